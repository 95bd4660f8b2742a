/*
Package match implements the matchmaking engine.

This file defines the pairing table: the symmetric user-to-partner mapping
for all currently matched users.
*/
package match

// pairingTable maps each matched user to their partner, in both directions.
// Not safe for concurrent use; the Engine serializes all access.
type pairingTable struct {
	partners map[string]string
}

func newPairingTable() *pairingTable {
	return &pairingTable{
		partners: make(map[string]string),
	}
}

// Len returns the number of matched users (twice the number of pairs).
func (p *pairingTable) Len() int {
	return len(p.partners)
}

// Contains reports whether id is currently matched.
func (p *pairingTable) Contains(id string) bool {
	_, ok := p.partners[id]
	return ok
}

// PartnerOf returns the partner of id, or false if id is unmatched.
func (p *pairingTable) PartnerOf(id string) (string, bool) {
	partner, ok := p.partners[id]
	return partner, ok
}

// Pair records a↔b. Callers must ensure neither side is already matched.
func (p *pairingTable) Pair(a, b string) {
	p.partners[a] = b
	p.partners[b] = a
}

// Unpair removes id and its partner from the table, returning the former
// partner. Returns false if id was not matched.
func (p *pairingTable) Unpair(id string) (string, bool) {
	partner, ok := p.partners[id]
	if !ok {
		return "", false
	}
	delete(p.partners, id)
	delete(p.partners, partner)
	return partner, true
}
