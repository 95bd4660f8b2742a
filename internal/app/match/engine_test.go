package match

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puchmatch/internal/pkg/errs"
)

// checkInvariants asserts the cross-structure invariants the engine must
// hold between operations: no queue/pair overlap, no queue duplicates, and
// pairing symmetry.
func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]struct{})
	for _, id := range e.queue.ids {
		_, dup := seen[id]
		require.False(t, dup, "queue contains %q twice", id)
		seen[id] = struct{}{}

		require.False(t, e.pairs.Contains(id), "user %q is queued and paired at once", id)
	}

	for user, partner := range e.pairs.partners {
		back, ok := e.pairs.PartnerOf(partner)
		require.True(t, ok, "pairing table is missing the reverse entry for %q", user)
		require.Equal(t, user, back, "pairing table is asymmetric for %q", user)
	}
}

func TestJoinPairsFirstComeFirstServed(t *testing.T) {
	e := NewEngine()

	res := e.Join("A", "")
	assert.Equal(t, StateWaiting, res.Status)
	assert.Nil(t, res.QueuePosition)

	res = e.Join("B", "")
	require.Equal(t, StateMatched, res.Status)
	assert.Equal(t, "A", res.PartnerID)
	assert.Equal(t, IcebreakerFreshMatch, res.Icebreaker)

	res = e.Join("A", "")
	require.Equal(t, StateAlreadyMatched, res.Status)
	assert.Equal(t, "B", res.PartnerID)
	assert.Equal(t, IcebreakerAlreadyMatched, res.Icebreaker)

	status := e.Status("A")
	require.Equal(t, StateMatched, status.Status)
	assert.Equal(t, "B", status.PartnerID)

	checkInvariants(t, e)
}

func TestJoinWhileWaitingReportsPosition(t *testing.T) {
	e := NewEngine()

	e.Join("A", "")

	res := e.Join("A", "")
	require.Equal(t, StateWaiting, res.Status)
	require.NotNil(t, res.QueuePosition)
	assert.Equal(t, 0, *res.QueuePosition)
}

func TestJoinFIFOFairness(t *testing.T) {
	e := NewEngine()

	e.Join("A", "")
	e.Join("B", "") // pairs A-B

	e.Join("C", "")
	res := e.Join("D", "")
	require.Equal(t, StateMatched, res.Status)
	assert.Equal(t, "C", res.PartnerID, "C joined before D's arrival and must be served first")

	checkInvariants(t, e)
}

func TestSendAndReceive(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	res, customErr := e.SendMessage("A", "hi")
	require.Nil(t, customErr)
	assert.Equal(t, StateSent, res.Status)
	assert.Equal(t, "B", res.To)

	msgs := e.GetMessages("B")
	require.Len(t, msgs, 1)
	assert.Equal(t, "A", msgs[0].From)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)

	assert.Empty(t, e.GetMessages("B"), "messages are delivered at most once")
}

func TestSendMessageValidation(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	_, customErr := e.SendMessage("A", "   ")
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrEmptyMessage, customErr.Code)

	_, customErr = e.SendMessage("C", "hi")
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrNotMatched, customErr.Code)

	// A rejected send must leave state untouched.
	assert.Empty(t, e.GetMessages("B"))
	checkInvariants(t, e)
}

func TestSendMessageTrimsText(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	_, customErr := e.SendMessage("A", "  hello  ")
	require.Nil(t, customErr)

	msgs := e.GetMessages("B")
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Text)
}

func TestSkipNotifiesAndRequeuesPartnerAtHead(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	res := e.Skip("A")
	assert.Equal(t, StateWaiting, res.Status, "with nobody else waiting the skipper waits")

	msgs := e.GetMessages("B")
	require.Len(t, msgs, 1)
	assert.Equal(t, SystemSender, msgs[0].From)
	assert.Equal(t, DisconnectText, msgs[0].Text)

	// B was requeued at the head, ahead of A.
	status := e.Status("B")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 0, *status.QueuePosition)

	status = e.Status("A")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 1, *status.QueuePosition)

	checkInvariants(t, e)
}

func TestSkipPairsWithNextWaitingUser(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "") // pairs A-B
	e.Join("C", "") // waits

	res := e.Skip("A")
	require.Equal(t, StateMatched, res.Status)
	assert.Equal(t, "C", res.PartnerID, "the skipper pairs with the waiting user, not the abandoned partner")

	// The abandoned partner holds the queue head for the next arrival.
	status := e.Status("B")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 0, *status.QueuePosition)

	checkInvariants(t, e)
}

func TestSkipWhileWaitingIsNoOp(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")

	res := e.Skip("A")
	assert.Equal(t, StateWaiting, res.Status)

	status := e.Status("A")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 0, *status.QueuePosition)
}

func TestSkipWhileNotConnectedEnqueues(t *testing.T) {
	e := NewEngine()

	res := e.Skip("A")
	assert.Equal(t, StateWaiting, res.Status)
	assert.Equal(t, StateWaiting, e.Status("A").Status)
}

func TestLeaveWhileWaiting(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")

	res := e.Leave("A")
	assert.Equal(t, StateLeft, res.Status)
	assert.Equal(t, StateNotConnected, e.Status("A").Status)
}

func TestLeaveWhileMatchedDoesNotRepairLeaver(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	res := e.Leave("A")
	assert.Equal(t, StateLeft, res.Status)

	// The leaver is gone from every structure; no re-pair attempt is made.
	assert.Equal(t, StateNotConnected, e.Status("A").Status)

	// The abandoned partner was notified and requeued at the head.
	msgs := e.GetMessages("B")
	require.Len(t, msgs, 1)
	assert.Equal(t, SystemSender, msgs[0].From)

	status := e.Status("B")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 0, *status.QueuePosition)

	checkInvariants(t, e)
}

func TestLeaveIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	assert.Equal(t, StateLeft, e.Leave("A").Status)
	before := e.Status("B")

	assert.Equal(t, StateLeft, e.Leave("A").Status)
	assert.Equal(t, before, e.Status("B"), "a repeated Leave must not disturb other users")

	assert.Equal(t, StateLeft, e.Leave("never-joined").Status)
}

func TestLeaveDiscardsPendingMessages(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	_, customErr := e.SendMessage("A", "hello")
	require.Nil(t, customErr)

	e.Leave("B")
	assert.Empty(t, e.GetMessages("B"))
}

func TestSelfPairGuardRestoresQueueHead(t *testing.T) {
	e := NewEngine()

	// The guard is structurally unreachable through the public operations;
	// drive the pairing branch directly with the caller already at the head.
	e.mu.Lock()
	e.queue.PushBack("A")
	partner, matched := e.matchOrEnqueueLocked("A")
	e.mu.Unlock()

	assert.False(t, matched)
	assert.Empty(t, partner)

	status := e.Status("A")
	require.Equal(t, StateWaiting, status.Status)
	require.NotNil(t, status.QueuePosition)
	assert.Equal(t, 0, *status.QueuePosition)
}

func TestJoinDefaultNickname(t *testing.T) {
	e := NewEngine()

	e.Join("user123456", "")
	nickname, ok := e.Nickname("user123456")
	require.True(t, ok)
	assert.Equal(t, "User-3456", nickname)

	e.Join("user-b", "Ada")
	nickname, ok = e.Nickname("user-b")
	require.True(t, ok)
	assert.Equal(t, "Ada", nickname)

	_, ok = e.Nickname("stranger")
	assert.False(t, ok)
}

func TestWatchSignalsOnNewMail(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	ch, cancel := e.Watch("A")
	defer cancel()

	_, customErr := e.SendMessage("B", "ping")
	require.Nil(t, customErr)

	select {
	case _, ok := <-ch:
		require.True(t, ok)
	default:
		t.Fatal("watcher was not signalled for new mail")
	}

	msgs := e.GetMessages("A")
	require.Len(t, msgs, 1)
	assert.Equal(t, "ping", msgs[0].Text)
}

func TestWatchSignalsPendingMailImmediately(t *testing.T) {
	e := NewEngine()
	e.Join("A", "")
	e.Join("B", "")

	_, customErr := e.SendMessage("B", "early")
	require.Nil(t, customErr)

	ch, cancel := e.Watch("A")
	defer cancel()

	select {
	case _, ok := <-ch:
		require.True(t, ok)
	default:
		t.Fatal("watcher with pending mail must be signalled on registration")
	}
}

func TestWatchReplacementClosesOldWatcher(t *testing.T) {
	e := NewEngine()

	old, _ := e.Watch("A")
	_, cancel := e.Watch("A")
	defer cancel()

	_, ok := <-old
	assert.False(t, ok, "a replaced watcher channel must be closed")
}

func TestShutdownClosesWatchers(t *testing.T) {
	e := NewEngine()

	ch, cancel := e.Watch("A")
	defer cancel()

	e.Shutdown()
	e.Shutdown() // repeated shutdown is harmless

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := e.Watch("B")
	_, ok = <-late
	assert.False(t, ok, "watchers registered after shutdown start closed")
}

func TestConcurrentOperationsHoldInvariants(t *testing.T) {
	e := NewEngine()

	const users = 64
	var wg sync.WaitGroup

	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id := fmt.Sprintf("user-%03d", i)
			e.Join(id, "")
			if res, customErr := e.SendMessage(id, "hello"); customErr == nil {
				e.GetMessages(res.To)
			}
			if i%7 == 0 {
				e.Skip(id)
			}
			if i%13 == 0 {
				e.Leave(id)
			}
			e.Status(id)
		}(i)
	}
	wg.Wait()

	checkInvariants(t, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.Zero(t, e.pairs.Len()%2, "the pairing table always holds whole pairs")
}
