package wordle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWordList_Success(t *testing.T) {
	dir := t.TempDir()
	guessesPath := writeLines(t, dir, "guesses.txt", []string{"apple", "crate", "trace"})
	solutionsPath := writeLines(t, dir, "solutions.txt", []string{"apple", "crate"})

	list, err := LoadWordList(guessesPath, solutionsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crate", "trace"}, list.Guesses)
	assert.Equal(t, []string{"apple", "crate"}, list.Solutions)
}

func TestLoadWordList_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	guessesPath := writeLines(t, dir, "guesses.txt", nil)
	solutionsPath := writeLines(t, dir, "solutions.txt", []string{"apple"})

	_, err := LoadWordList(guessesPath, solutionsPath)
	require.Error(t, err)
	werr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindEmptyInput, werr.Kind)
}

func TestLoadWordList_InvalidWordLength(t *testing.T) {
	dir := t.TempDir()
	guessesPath := writeLines(t, dir, "guesses.txt", []string{"ab"})
	solutionsPath := writeLines(t, dir, "solutions.txt", []string{"ab"})

	_, err := LoadWordList(guessesPath, solutionsPath)
	require.Error(t, err)
	werr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidWord, werr.Kind)
}

func TestLoadWordList_SolutionNotGuessable(t *testing.T) {
	dir := t.TempDir()
	guessesPath := writeLines(t, dir, "guesses.txt", []string{"apple"})
	solutionsPath := writeLines(t, dir, "solutions.txt", []string{"crate"})

	_, err := LoadWordList(guessesPath, solutionsPath)
	require.Error(t, err)
	werr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindSolutionNotGuessable, werr.Kind)
}

func TestLoadWordList_NormalizesCaseAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	guessesPath := writeLines(t, dir, "guesses.txt", []string{"APPLE", "", "Crate"})
	solutionsPath := writeLines(t, dir, "solutions.txt", []string{"apple"})

	list, err := LoadWordList(guessesPath, solutionsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crate"}, list.Guesses)
}
