/*
Package randx generates the unique identifiers the server mints.

User identifiers are caller-supplied and opaque, so the only IDs produced
here are per-message UUIDs.
*/
package randx

import "github.com/google/uuid"

// MessageID returns a UUID v4 string identifying a relayed message.
func MessageID() string {
	return uuid.New().String()
}
