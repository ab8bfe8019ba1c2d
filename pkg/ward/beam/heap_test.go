package beam

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

func TestBoundedTopKKeepsLowestScores(t *testing.T) {
	entries := []entry{
		{prefix: ward.NewAssignment(), score: 5},
		{prefix: ward.NewAssignment(), score: 1},
		{prefix: ward.NewAssignment(), score: 3},
		{prefix: ward.NewAssignment(), score: 2},
		{prefix: ward.NewAssignment(), score: 4},
	}

	top := boundedTopK(entries, 2)
	require.Len(t, top, 2)

	scores := map[float64]bool{}
	for _, e := range top {
		scores[e.score] = true
	}
	require.True(t, scores[1])
	require.True(t, scores[2])
}

func TestBoundedTopKHandlesKLargerThanInput(t *testing.T) {
	entries := []entry{
		{prefix: ward.NewAssignment(), score: 1},
		{prefix: ward.NewAssignment(), score: 2},
	}
	top := boundedTopK(entries, 10)
	require.Len(t, top, 2)
}

func TestBestOfPicksLowestScore(t *testing.T) {
	entries := []entry{
		{prefix: ward.NewAssignment(), score: 5},
		{prefix: ward.NewAssignment(), score: -1},
		{prefix: ward.NewAssignment(), score: 2},
	}
	require.Equal(t, float64(-1), bestOf(entries).score)
}
