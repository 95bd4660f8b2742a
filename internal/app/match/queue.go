/*
Package match implements the matchmaking engine.

This file defines the waiting queue: an ordered, duplicate-free sequence of
user IDs awaiting a partner. Normal arrivals append at the tail; users whose
partner disconnected are reinserted at the head so they re-match first.
*/
package match

// waitingQueue preserves arrival order and rejects duplicate membership.
// Not safe for concurrent use; the Engine serializes all access.
type waitingQueue struct {
	ids    []string
	member map[string]struct{}
}

func newWaitingQueue() *waitingQueue {
	return &waitingQueue{
		member: make(map[string]struct{}),
	}
}

// Len returns the number of users waiting.
func (q *waitingQueue) Len() int {
	return len(q.ids)
}

// Contains reports whether id is in the queue.
func (q *waitingQueue) Contains(id string) bool {
	_, ok := q.member[id]
	return ok
}

// Position returns the zero-based position of id, or false if absent.
func (q *waitingQueue) Position(id string) (int, bool) {
	if !q.Contains(id) {
		return 0, false
	}
	for i, queued := range q.ids {
		if queued == id {
			return i, true
		}
	}
	return 0, false
}

// PushBack appends id at the tail. Returns false if id is already queued.
func (q *waitingQueue) PushBack(id string) bool {
	if q.Contains(id) {
		return false
	}
	q.ids = append(q.ids, id)
	q.member[id] = struct{}{}
	return true
}

// PushFront inserts id at the head, ahead of all FIFO arrivals.
// Returns false if id is already queued.
func (q *waitingQueue) PushFront(id string) bool {
	if q.Contains(id) {
		return false
	}
	q.ids = append([]string{id}, q.ids...)
	q.member[id] = struct{}{}
	return true
}

// PopFront removes and returns the head of the queue.
func (q *waitingQueue) PopFront() (string, bool) {
	if len(q.ids) == 0 {
		return "", false
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	delete(q.member, id)
	return id, true
}

// Remove deletes id from the queue wherever it sits.
// Returns false if id was not queued.
func (q *waitingQueue) Remove(id string) bool {
	if !q.Contains(id) {
		return false
	}
	for i, queued := range q.ids {
		if queued == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			break
		}
	}
	delete(q.member, id)
	return true
}
