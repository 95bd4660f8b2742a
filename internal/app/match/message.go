/*
Package match implements the matchmaking engine: the in-memory state machine
that pairs anonymous users first-come-first-served, relays their messages
through per-user inboxes, and tracks each user's connection state.
*/
package match

import (
	"time"

	"puchmatch/internal/pkg/randx"
)

// SystemSender is the sender ID used for messages the engine itself emits.
const SystemSender = "system"

// DisconnectText is the system notification delivered to a user whose
// partner skipped or left.
const DisconnectText = "Your partner disconnected."

// Message is a single relayed chat message. Immutable once created.
type Message struct {
	// ID uniquely identifies the message.
	ID string `json:"id"`

	// From is the sender's user ID, or SystemSender for engine notifications.
	From string `json:"from"`

	// Text is the message body.
	Text string `json:"text"`

	// SentAt records when the engine accepted the message.
	SentAt time.Time `json:"sent_at"`
}

// newMessage builds a Message with a fresh ID and the current time.
func newMessage(from, text string) Message {
	return Message{
		ID:     randx.MessageID(),
		From:   from,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
}
