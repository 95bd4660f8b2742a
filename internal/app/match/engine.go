/*
Package match implements the matchmaking engine.

This file defines the Engine, the single owner of the waiting queue, pairing
table, inbox store, and presence registry. Every operation runs as one atomic
unit under the Engine's mutex; no structure is reachable except through these
methods, so a half-formed pairing is never observable.
*/
package match

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/logx"
)

const (
	// IcebreakerAlreadyMatched is returned when Join finds an existing pair.
	IcebreakerAlreadyMatched = "What's something you love talking about?"

	// IcebreakerFreshMatch is returned alongside a newly formed pair.
	IcebreakerFreshMatch = "If you could have lunch with anyone (alive), who would it be?"
)

// Engine serializes all matchmaking operations over its four structures.
// Invariants held between operations: queue membership and pairing-table
// membership are disjoint, the queue has no duplicates, and the pairing
// table is symmetric.
type Engine struct {
	mu sync.Mutex

	queue    *waitingQueue
	pairs    *pairingTable
	inboxes  *inboxStore
	presence *presenceRegistry

	// watchers holds at most one signal channel per user, woken whenever
	// mail lands in that user's inbox.
	watchers map[string]chan struct{}

	closed bool

	logger zerolog.Logger
}

// NewEngine constructs an empty Engine.
func NewEngine() *Engine {
	engineLogger := logx.Logger().With().Str("component", "Engine").Logger()

	return &Engine{
		queue:    newWaitingQueue(),
		pairs:    newPairingTable(),
		inboxes:  newInboxStore(),
		presence: newPresenceRegistry(),
		watchers: make(map[string]chan struct{}),
		logger:   engineLogger,
	}
}

// ensureUserLocked registers the user's presence and inbox on first contact.
func (e *Engine) ensureUserLocked(userID, nickname string) {
	e.presence.Ensure(userID, nickname)
	e.inboxes.Ensure(userID)
}

// matchOrEnqueueLocked runs the pairing branch shared by Join and Skip:
// pop the queue head as a partner, or enqueue the user at the tail when
// nobody is waiting. If the popped head equals the caller (structurally
// unreachable while the disjointness invariant holds) the head is restored
// and the caller stays waiting.
func (e *Engine) matchOrEnqueueLocked(userID string) (string, bool) {
	head, ok := e.queue.PopFront()
	if !ok {
		e.queue.PushBack(userID)
		return "", false
	}

	if head == userID {
		e.queue.PushFront(head)
		e.logger.Warn().Str("user_id", userID).Msg("Self-pair guard triggered; user kept waiting.")
		return "", false
	}

	e.pairs.Pair(userID, head)
	e.ensureUserLocked(userID, "")
	e.ensureUserLocked(head, "")

	e.logger.Info().Str("user_id", userID).Str("partner_id", head).Msg("Pair formed.")
	return head, true
}

// dissolveLocked removes the caller's pair, notifies the former partner with
// a system message, and returns the former partner's ID. The partner is NOT
// requeued here; callers decide when the head reinsertion happens.
func (e *Engine) dissolveLocked(userID string) (string, bool) {
	partner, ok := e.pairs.Unpair(userID)
	if !ok {
		return "", false
	}

	e.inboxes.Append(partner, newMessage(SystemSender, DisconnectText))
	e.notifyLocked(partner)

	e.logger.Info().Str("user_id", userID).Str("partner_id", partner).Msg("Pair dissolved.")
	return partner, true
}

// Join registers the user if unknown and either reports an existing pair or
// queue spot, pairs the user with the longest-waiting candidate, or enqueues
// the user at the tail.
func (e *Engine) Join(userID, nickname string) JoinResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ensureUserLocked(userID, nickname)

	if partner, ok := e.pairs.PartnerOf(userID); ok {
		return JoinResult{
			Status:     StateAlreadyMatched,
			PartnerID:  partner,
			Icebreaker: IcebreakerAlreadyMatched,
		}
	}

	if pos, ok := e.queue.Position(userID); ok {
		return JoinResult{Status: StateWaiting, QueuePosition: &pos}
	}

	if partner, matched := e.matchOrEnqueueLocked(userID); matched {
		return JoinResult{
			Status:     StateMatched,
			PartnerID:  partner,
			Icebreaker: IcebreakerFreshMatch,
		}
	}

	return JoinResult{Status: StateWaiting}
}

// SendMessage relays text to the caller's partner's inbox. It fails with
// ErrEmptyMessage when the trimmed text is empty and ErrNotMatched when the
// caller has no partner; a failed send leaves all state untouched.
func (e *Engine) SendMessage(userID, text string) (SendResult, *errs.CustomError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SendResult{}, errs.NewError(errs.ErrEmptyMessage)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	partner, ok := e.pairs.PartnerOf(userID)
	if !ok {
		return SendResult{}, errs.NewError(errs.ErrNotMatched)
	}

	e.inboxes.Append(partner, newMessage(userID, text))
	e.notifyLocked(partner)

	return SendResult{Status: StateSent, To: partner}, nil
}

// GetMessages returns and clears the caller's pending messages. Each message
// is delivered at most once; a second call with no intervening send returns
// an empty slice, as does any call for an unknown user.
func (e *Engine) GetMessages(userID string) []Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.inboxes.Drain(userID)
}

// Skip abandons the caller's current pair and immediately retries pairing.
// The former partner is notified and reinserted at the queue head, ahead of
// FIFO arrivals, but only after the caller's retry has run, so a skip never
// re-pairs the same two users while others could be matched.
// Skipping while waiting is a no-op.
func (e *Engine) Skip(userID string) SkipResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.queue.Contains(userID) {
		return SkipResult{Status: StateWaiting}
	}

	former, hadPair := e.dissolveLocked(userID)

	e.ensureUserLocked(userID, "")

	partner, matched := e.matchOrEnqueueLocked(userID)

	if hadPair {
		e.queue.PushFront(former)
	}

	if matched {
		return SkipResult{Status: StateMatched, PartnerID: partner}
	}
	return SkipResult{Status: StateWaiting}
}

// Leave removes the caller from every structure: queue spot, pair (with the
// partner notified and requeued at the head), inbox, and presence entry.
// The leaver is never re-paired. Idempotent; unknown users get "left" too.
func (e *Engine) Leave(userID string) LeaveResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.queue.Remove(userID)

	if former, hadPair := e.dissolveLocked(userID); hadPair {
		e.queue.PushFront(former)
	}

	e.inboxes.Clear(userID)
	e.presence.Remove(userID)

	return LeaveResult{Status: StateLeft}
}

// Status reports the caller's connection state without side effects.
func (e *Engine) Status(userID string) StatusResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if partner, ok := e.pairs.PartnerOf(userID); ok {
		return StatusResult{Status: StateMatched, PartnerID: partner}
	}

	if pos, ok := e.queue.Position(userID); ok {
		return StatusResult{Status: StateWaiting, QueuePosition: &pos}
	}

	return StatusResult{Status: StateNotConnected}
}

// Nickname returns the display name recorded for userID, or false if the
// user is unknown.
func (e *Engine) Nickname(userID string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.presence.Get(userID)
	if !ok {
		return "", false
	}
	return session.Nickname, true
}

// Watch registers a signal channel woken whenever mail lands in userID's
// inbox. At most one watcher per user; a new Watch replaces (closes) the
// previous one. The returned cancel func removes the watcher. If mail is
// already pending the channel is signalled immediately.
func (e *Engine) Watch(userID string) (<-chan struct{}, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan struct{}, 1)

	if e.closed {
		close(ch)
		return ch, func() {}
	}

	if old, ok := e.watchers[userID]; ok {
		close(old)
	}
	e.watchers[userID] = ch

	if e.inboxes.Pending(userID) > 0 {
		ch <- struct{}{}
	}

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if current, ok := e.watchers[userID]; ok && current == ch {
			delete(e.watchers, userID)
			close(ch)
		}
	}

	return ch, cancel
}

// notifyLocked wakes userID's watcher, if any. The signal coalesces: a full
// buffer means a wakeup is already pending.
func (e *Engine) notifyLocked(userID string) {
	ch, ok := e.watchers[userID]
	if !ok {
		return
	}

	select {
	case ch <- struct{}{}:
	default:
	}
}

// Shutdown closes all watcher channels. Engine state itself is volatile and
// simply discarded with the process.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	for userID, ch := range e.watchers {
		close(ch)
		delete(e.watchers, userID)
	}

	e.logger.Info().Msg("Engine shutdown complete.")
}
