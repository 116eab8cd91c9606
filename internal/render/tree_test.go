package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzo-stoakes/wordle-solver/internal/solver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// Single-solution input (spec §8): rendered line is "apple GGGGG apple".
func TestRender_SingleSolution(t *testing.T) {
	guesses := []string{"apple"}
	solutions := []string{"apple"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := solver.NewEngine(table)
	result := engine.Solve(8)

	tree := New(table, guesses, solutions)
	out := tree.Render(result.Root)
	assert.Equal(t, "apple GGGGG apple\n", out)
}

func TestRenderSolution_TargetNotInList(t *testing.T) {
	guesses := []string{"apple"}
	solutions := []string{"apple"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := solver.NewEngine(table)
	result := engine.Solve(8)

	tree := New(table, guesses, solutions)
	_, err := tree.RenderSolution(result.Root, "nopea")
	require.Error(t, err)
	werr, ok := wordle.AsError(err)
	require.True(t, ok)
	assert.Equal(t, wordle.KindUnknownTargetSolution, werr.Kind)
}

func TestRenderSolution_TwoSolutionTrivial(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	solutions := []string{"abcde", "abcdf"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := solver.NewEngine(table)
	result := engine.Solve(8)

	tree := New(table, guesses, solutions)

	line, err := tree.RenderSolution(result.Root, "abcde")
	require.NoError(t, err)
	assert.Equal(t, "abcde GGGGG abcde\n", line)

	line2, err := tree.RenderSolution(result.Root, "abcdf")
	require.NoError(t, err)
	assert.Contains(t, line2, "abcde ")
	assert.Contains(t, line2, "abcdf\n")
}
