/*
Package profile provides the persistent user-profile directory.

This file implements the interest-based candidate matcher: ranking other
users by how many interests they share with the caller. Suggestions are a
layered feature; the ranking never feeds back into pairing decisions.
*/
package profile

import (
	"context"
	"sort"
	"strings"
)

// Candidate is one suggested partner, ranked by shared interests.
type Candidate struct {
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	CommonInterests []string `json:"common_interests"`
	Score           int      `json:"score"`
}

// Matcher ranks suggestion candidates from the profile directory.
type Matcher struct {
	store *Store

	// maxResults caps how many candidates a lookup returns.
	maxResults int

	// minCommon is the smallest shared-interest count worth suggesting.
	minCommon int
}

// NewMatcher builds a Matcher over store with the given tuning.
func NewMatcher(store *Store, maxResults, minCommon int) *Matcher {
	return &Matcher{
		store:      store,
		maxResults: maxResults,
		minCommon:  minCommon,
	}
}

// parseInterests splits a comma-separated interests string into a normalized
// set (trimmed, lowercased, empties dropped).
func parseInterests(interests string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(interests, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			set[part] = struct{}{}
		}
	}
	return set
}

// commonInterests returns the sorted intersection of two interest sets.
func commonInterests(a, b map[string]struct{}) []string {
	var shared []string
	for interest := range a {
		if _, ok := b[interest]; ok {
			shared = append(shared, interest)
		}
	}
	sort.Strings(shared)
	return shared
}

// rankCandidates scores every other profile against the caller's interests,
// drops candidates below the minimum shared count, and orders the rest by
// descending score, then name. Pure; separated from the store for testing.
func rankCandidates(me Profile, others []Profile, maxResults, minCommon int) []Candidate {
	myInterests := parseInterests(me.Interests)

	var candidates []Candidate
	for _, other := range others {
		if other.UserID == me.UserID {
			continue
		}

		shared := commonInterests(myInterests, parseInterests(other.Interests))
		if len(shared) < minCommon {
			continue
		}

		candidates = append(candidates, Candidate{
			UserID:          other.UserID,
			Name:            other.Name,
			CommonInterests: shared,
			Score:           len(shared),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Name < candidates[j].Name
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates
}

// FindCandidates returns the ranked suggestions for userID. A user with no
// profile gets an empty list.
func (m *Matcher) FindCandidates(ctx context.Context, userID string) ([]Candidate, error) {
	me, err := m.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return []Candidate{}, nil
	}

	others, err := m.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := rankCandidates(*me, others, m.maxResults, m.minCommon)
	if candidates == nil {
		candidates = []Candidate{}
	}
	return candidates, nil
}
