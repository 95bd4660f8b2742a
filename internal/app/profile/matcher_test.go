package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterestsNormalizes(t *testing.T) {
	set := parseInterests(" Music, cricket ,AEROMODELLING,, music ")

	assert.Len(t, set, 3)
	assert.Contains(t, set, "music")
	assert.Contains(t, set, "cricket")
	assert.Contains(t, set, "aeromodelling")
}

func TestParseInterestsEmpty(t *testing.T) {
	assert.Empty(t, parseInterests(""))
	assert.Empty(t, parseInterests(" , , "))
}

func TestRankCandidatesOrdersByScoreThenName(t *testing.T) {
	me := Profile{UserID: "me", Interests: "music,cricket,films"}
	others := []Profile{
		{UserID: "u1", Name: "Zara", Interests: "music"},
		{UserID: "u2", Name: "Ben", Interests: "music,cricket"},
		{UserID: "u3", Name: "Amy", Interests: "music"},
		{UserID: "u4", Name: "Kim", Interests: "chess"},
	}

	candidates := rankCandidates(me, others, 5, 1)

	require.Len(t, candidates, 3)
	assert.Equal(t, "u2", candidates[0].UserID, "highest shared count ranks first")
	assert.Equal(t, []string{"cricket", "music"}, candidates[0].CommonInterests)
	assert.Equal(t, 2, candidates[0].Score)

	// Equal scores break ties by name.
	assert.Equal(t, "Amy", candidates[1].Name)
	assert.Equal(t, "Zara", candidates[2].Name)
}

func TestRankCandidatesExcludesSelf(t *testing.T) {
	me := Profile{UserID: "me", Interests: "music"}
	others := []Profile{
		{UserID: "me", Name: "Self", Interests: "music"},
		{UserID: "u1", Name: "Ada", Interests: "music"},
	}

	candidates := rankCandidates(me, others, 5, 1)

	require.Len(t, candidates, 1)
	assert.Equal(t, "u1", candidates[0].UserID)
}

func TestRankCandidatesHonorsMinimum(t *testing.T) {
	me := Profile{UserID: "me", Interests: "music,cricket"}
	others := []Profile{
		{UserID: "u1", Name: "Ada", Interests: "music"},
		{UserID: "u2", Name: "Ben", Interests: "music,cricket"},
	}

	candidates := rankCandidates(me, others, 5, 2)

	require.Len(t, candidates, 1)
	assert.Equal(t, "u2", candidates[0].UserID)
}

func TestRankCandidatesTruncatesToMax(t *testing.T) {
	me := Profile{UserID: "me", Interests: "music"}
	others := []Profile{
		{UserID: "u1", Name: "Ada", Interests: "music"},
		{UserID: "u2", Name: "Ben", Interests: "music"},
		{UserID: "u3", Name: "Cle", Interests: "music"},
	}

	candidates := rankCandidates(me, others, 2, 1)

	assert.Len(t, candidates, 2)
}
