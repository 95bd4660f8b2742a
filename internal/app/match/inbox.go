/*
Package match implements the matchmaking engine.

This file defines the inbox store: per-user FIFO buffers holding messages
that have been relayed but not yet retrieved by their recipient.
*/
package match

// inboxStore keeps one ordered pending-message buffer per user.
// Not safe for concurrent use; the Engine serializes all access.
type inboxStore struct {
	boxes map[string][]Message
}

func newInboxStore() *inboxStore {
	return &inboxStore{
		boxes: make(map[string][]Message),
	}
}

// Ensure creates an empty inbox for id if none exists.
func (s *inboxStore) Ensure(id string) {
	if _, ok := s.boxes[id]; !ok {
		s.boxes[id] = []Message{}
	}
}

// Append queues msg at the tail of id's inbox, creating it if needed.
func (s *inboxStore) Append(id string, msg Message) {
	s.boxes[id] = append(s.boxes[id], msg)
}

// Drain returns all pending messages for id in order and empties the inbox,
// so each message is delivered at most once. Unknown users get an empty slice.
func (s *inboxStore) Drain(id string) []Message {
	msgs, ok := s.boxes[id]
	if !ok || len(msgs) == 0 {
		return []Message{}
	}
	s.boxes[id] = []Message{}
	return msgs
}

// Pending returns the number of undelivered messages for id.
func (s *inboxStore) Pending(id string) int {
	return len(s.boxes[id])
}

// Clear removes id's inbox entirely.
func (s *inboxStore) Clear(id string) {
	delete(s.boxes, id)
}
