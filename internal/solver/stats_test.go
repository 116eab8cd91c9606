package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

func TestComputeStats_SingleSolution(t *testing.T) {
	table := wordle.BuildMatchTable([]string{"apple"}, []string{"apple"})
	engine := NewEngine(table)
	result := engine.Solve(8)

	stats := ComputeStats(result.Root, result.NumSolutions)
	assert.Equal(t, 1, stats.Counts[1])
	assert.Equal(t, 0, stats.Unsolved)
	assert.Equal(t, float64(1), stats.AverageGuesses())
}

func TestComputeStats_TwoSolutionTrivial(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	solutions := []string{"abcde", "abcdf"}
	table := wordle.BuildMatchTable(guesses, solutions)
	engine := NewEngine(table)
	result := engine.Solve(8)

	stats := ComputeStats(result.Root, result.NumSolutions)
	assert.Equal(t, 1, stats.Counts[1])
	assert.Equal(t, 1, stats.Counts[2])
	assert.Equal(t, 0, stats.Unsolved)
	assert.Equal(t, 1.5, stats.AverageGuesses())
}

func TestStats_AverageGuesses_NoSolutions(t *testing.T) {
	s := &Stats{}
	assert.Equal(t, float64(0), s.AverageGuesses())
}
