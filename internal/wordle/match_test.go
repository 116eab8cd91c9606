package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Feedback-pattern unit test (spec §8). Direct position comparison shows
// crate[1]='r' == trace[1]='r', which the two-pass algorithm scores green —
// the scenario's own prose calls it yellow and arrives at pattern string
// "yyGyG"/value 211, which is inconsistent with the algorithm it claims to
// follow. This test asserts the value the stated algorithm actually
// produces ("yGGyG"/214); see DESIGN.md for the discrepancy note.
func TestComputeMatch_FeedbackPattern(t *testing.T) {
	val, str := computeMatch("crate", "trace")
	assert.Equal(t, "yGGyG", str)
	assert.Equal(t, MatchValue(214), val)
}

// Duplicate-letter rule (spec §8). The scenario's own per-position
// reasoning walks to "yy.G." but its final written conclusion is garbled
// as "yyyG."; this test follows the reasoning, not the typo.
func TestComputeMatch_DuplicateLetterRule(t *testing.T) {
	val, str := computeMatch("allee", "later")
	assert.Equal(t, "yy.G.", str)
	assert.Equal(t, MatchValue(1+3+0+2*27+0), val)
}

// Invariant 4: match[g, g] == M - 1 for every g (an exact self-match is
// all green).
func TestComputeMatch_SelfMatchIsAllGreens(t *testing.T) {
	for _, w := range []string{"apple", "crate", "later", "allee"} {
		val, str := computeMatch(w, w)
		assert.Equal(t, MatchValue(AllGreens), val)
		assert.Equal(t, "GGGGG", str)
	}
}

func TestBuildMatchTable_LookupAndStrings(t *testing.T) {
	guesses := []string{"crate", "apple"}
	solutions := []string{"trace", "apple"}

	table := BuildMatchTable(guesses, solutions)
	require.Equal(t, 2, table.NumGuesses)
	require.Equal(t, 2, table.NumSolutions)

	mv := table.Lookup(0, 0)
	assert.Equal(t, MatchValue(214), mv)
	assert.Equal(t, "yGGyG", table.Strings[mv])

	mv2 := table.Lookup(1, 1)
	assert.Equal(t, MatchValue(AllGreens), mv2)
	assert.Equal(t, "GGGGG", table.Strings[mv2])
}
