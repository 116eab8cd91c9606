package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// Single-solution input (spec §8): one node, is_leaf, solved_count=1,
// total_depth=1.
func TestEngine_SingleSolution(t *testing.T) {
	table := wordle.BuildMatchTable([]string{"apple"}, []string{"apple"})
	engine := NewEngine(table)

	result := engine.Solve(8)
	root := result.Root

	assert.Equal(t, 0, root.GuessIndex)
	assert.True(t, root.IsLeaf)
	assert.Equal(t, 1, root.SolvedCount)
	assert.Equal(t, 1, root.TotalDepth)
}

// Two-solution trivial (spec §8): root picks one of the two guesses;
// the other sits in Leaves; solved_count=2, total_depth=3 (1 for the
// immediate match, 2 for the deferred one).
func TestEngine_TwoSolutionTrivial(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	solutions := []string{"abcde", "abcdf"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := NewEngine(table)

	result := engine.Solve(8)
	root := result.Root

	assert.Equal(t, 2, root.SolvedCount)
	assert.Equal(t, 3, root.TotalDepth)
	assert.True(t, root.IsLeaf)
	require.Len(t, root.Leaves, 1)
}

// Determinism (spec §8 invariant 7): repeated Solve calls on fresh
// engines over the same inputs produce identical root guess choices and
// aggregate statistics, regardless of worker scheduling.
func TestEngine_Deterministic(t *testing.T) {
	guesses := []string{"apple", "crate", "trace", "allee", "later", "bound", "chess"}
	solutions := []string{"apple", "crate", "trace", "allee", "later", "bound", "chess"}
	table := wordle.BuildMatchTable(guesses, solutions)

	var firstGuess int
	var firstSolved, firstDepth int
	for i := 0; i < 5; i++ {
		engine := NewEngine(table)
		result := engine.Solve(8)
		if i == 0 {
			firstGuess = result.Root.GuessIndex
			firstSolved = result.Root.SolvedCount
			firstDepth = result.Root.TotalDepth
			continue
		}
		assert.Equal(t, firstGuess, result.Root.GuessIndex)
		assert.Equal(t, firstSolved, result.Root.SolvedCount)
		assert.Equal(t, firstDepth, result.Root.TotalDepth)
	}
}

// Invariant 3: the root's solved_count never exceeds the feasible set
// size, and equals it whenever no depth-budget elision has occurred.
func TestEngine_RootSolvedCountWithinBounds(t *testing.T) {
	guesses := []string{"apple", "crate", "trace", "allee", "later"}
	solutions := []string{"apple", "crate", "trace", "allee", "later"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := NewEngine(table)

	result := engine.Solve(8)
	assert.LessOrEqual(t, result.Root.SolvedCount, result.NumSolutions)
}

// The min_depth "unset" sentinel (spec §9's Open Question): a freshly
// allocated node never promoted by a leaf or child reports min_depth==0
// and is treated as failing the depth budget at every depth.
func TestNode_WithinDepthBudget_UnsetMinDepth(t *testing.T) {
	n := &Node{}
	for depth := 0; depth < wordle.MaxGuesses; depth++ {
		assert.False(t, n.withinDepthBudget(depth))
	}
}

func TestNode_MinDepthPromotion(t *testing.T) {
	n := &Node{}
	n.raiseMinDepthFloor(2)
	assert.Equal(t, 2, n.MinDepth)

	// lowerMinDepth only adopts a smaller candidate.
	n.lowerMinDepth(5)
	assert.Equal(t, 2, n.MinDepth)

	n2 := &Node{}
	n2.lowerMinDepth(3)
	assert.Equal(t, 3, n2.MinDepth, "unset (zero) min_depth must be treated as infinity, not as the smallest value")
}
