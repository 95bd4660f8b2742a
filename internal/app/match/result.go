/*
Package match implements the matchmaking engine.

This file defines the tagged result types returned by the engine's
operations. Each operation gets its own struct carrying only the fields
meaningful for that operation's outcomes.
*/
package match

// ConnState names a user's connection state as reported to callers.
type ConnState string

const (
	// StateMatched means the user currently has a partner.
	StateMatched ConnState = "matched"

	// StateAlreadyMatched means a Join found the user already paired.
	StateAlreadyMatched ConnState = "already_matched"

	// StateWaiting means the user is in the waiting queue.
	StateWaiting ConnState = "waiting"

	// StateNotConnected means the user is in no engine structure.
	StateNotConnected ConnState = "not_connected"

	// StateSent acknowledges a relayed message.
	StateSent ConnState = "sent"

	// StateLeft acknowledges a Leave.
	StateLeft ConnState = "left"
)

// JoinResult reports the outcome of Join: matched, already_matched, or
// waiting. QueuePosition is set only when reporting an existing queue spot.
type JoinResult struct {
	Status        ConnState `json:"status"`
	PartnerID     string    `json:"partner_id,omitempty"`
	Icebreaker    string    `json:"icebreaker,omitempty"`
	QueuePosition *int      `json:"queue_position,omitempty"`
}

// SendResult acknowledges a relayed message and names its recipient.
type SendResult struct {
	Status ConnState `json:"status"`
	To     string    `json:"to"`
}

// SkipResult reports the outcome of Skip: matched with a fresh partner, or
// waiting.
type SkipResult struct {
	Status    ConnState `json:"status"`
	PartnerID string    `json:"partner_id,omitempty"`
}

// LeaveResult acknowledges a Leave. Always "left".
type LeaveResult struct {
	Status ConnState `json:"status"`
}

// StatusResult reports a user's current connection state.
type StatusResult struct {
	Status        ConnState `json:"status"`
	PartnerID     string    `json:"partner_id,omitempty"`
	QueuePosition *int      `json:"queue_position,omitempty"`
}
