/*
Package match implements the matchmaking engine.

This file defines the presence registry: lifecycle metadata for every known
user. It carries no match logic; a user's connection state is derived from
queue and pairing membership, never stored here.
*/
package match

import "time"

// Session holds the metadata recorded for one known user. Created on first
// contact, destroyed on Leave.
type Session struct {
	// ID is the caller-supplied opaque user identifier.
	ID string `json:"id"`

	// Nickname is the display name, defaulted from the ID when unset.
	Nickname string `json:"nickname"`

	// FirstSeen records when the user first contacted the engine.
	FirstSeen time.Time `json:"first_seen"`
}

// presenceRegistry maps user IDs to their sessions.
// Not safe for concurrent use; the Engine serializes all access.
type presenceRegistry struct {
	sessions map[string]*Session
}

func newPresenceRegistry() *presenceRegistry {
	return &presenceRegistry{
		sessions: make(map[string]*Session),
	}
}

// defaultNickname derives the placeholder display name from a user ID.
func defaultNickname(id string) string {
	tail := id
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "User-" + tail
}

// Ensure registers id if unknown, applying nickname or the derived default.
// An existing session is never altered; the first nickname wins, matching
// first-contact registration semantics.
func (r *presenceRegistry) Ensure(id, nickname string) *Session {
	if session, ok := r.sessions[id]; ok {
		return session
	}

	if nickname == "" {
		nickname = defaultNickname(id)
	}

	session := &Session{
		ID:        id,
		Nickname:  nickname,
		FirstSeen: time.Now().UTC(),
	}
	r.sessions[id] = session
	return session
}

// Get returns the session for id, or false if the user is unknown.
func (r *presenceRegistry) Get(id string) (*Session, bool) {
	session, ok := r.sessions[id]
	return session, ok
}

// Remove deletes the session for id.
func (r *presenceRegistry) Remove(id string) {
	delete(r.sessions, id)
}

// Len returns the number of known users.
func (r *presenceRegistry) Len() int {
	return len(r.sessions)
}
