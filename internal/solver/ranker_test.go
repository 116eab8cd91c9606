package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

func TestRankGuesses_SingleSolutionEarlyExit(t *testing.T) {
	guesses := []string{"apple"}
	solutions := []string{"apple"}
	table := wordle.BuildMatchTable(guesses, solutions)

	ranked := rankGuesses(table, []int{0}, 8)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].guessIndex)
	assert.Less(t, ranked[0].avg, 1.0)
}

// Invariant 6: Ranker monotonicity. U(g, F1) <= U(g, F2) when F1 subset F2.
func TestRankGuesses_Monotonicity(t *testing.T) {
	guesses := []string{"apple", "crate", "trace", "allee", "later"}
	solutions := []string{"apple", "crate", "trace", "allee", "later"}
	table := wordle.BuildMatchTable(guesses, solutions)

	small := []int{0, 1}
	big := []int{0, 1, 2, 3, 4}

	uniqueMatches := func(g int, f []int) int {
		var seen [wordle.NumPatterns]bool
		n := 0
		for _, s := range f {
			mv := table.Lookup(g, s)
			if !seen[mv] {
				seen[mv] = true
				n++
			}
		}
		return n
	}

	for g := 0; g < table.NumGuesses; g++ {
		assert.LessOrEqual(t, uniqueMatches(g, small), uniqueMatches(g, big))
	}
}

func TestRankGuesses_RespectsPruneLimit(t *testing.T) {
	guesses := []string{"apple", "crate", "trace", "allee", "later", "bound", "chess"}
	solutions := []string{"apple", "crate", "trace", "allee", "later", "bound", "chess"}
	table := wordle.BuildMatchTable(guesses, solutions)

	all := make([]int, len(solutions))
	for i := range all {
		all[i] = i
	}

	ranked := rankGuesses(table, all, 3)
	assert.LessOrEqual(t, len(ranked), 3)
}
