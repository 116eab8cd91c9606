// Package render formats a solved decision tree as human-readable
// guess-by-guess traversal lines, grounded on original_source's
// extract_tree_stacks/print_tree (spec §6).
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lorenzo-stoakes/wordle-solver/internal/solver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// Tree renders solver.Result trees against the word lists used to build
// them.
type Tree struct {
	Table        *wordle.MatchTable
	ValidGuesses []string
	Solutions    []string
}

// New builds a Tree renderer.
func New(table *wordle.MatchTable, validGuesses, solutions []string) *Tree {
	return &Tree{Table: table, ValidGuesses: validGuesses, Solutions: solutions}
}

// stack is one solution's guess path: every guess made before the
// solution is either directly typed (is_leaf) or uniquely determined
// (the sole remaining feasible solution).
type stack struct {
	solutionIndex int
	guessIndexes  []int
}

// extractStacks walks root and records, for every solution the tree
// reaches, the sequence of guess indexes made to get there; patterns are
// looked up when the line is written. Grounded on extract_tree_stacks,
// but pushes a node's own guess_index onto the path *before* recording
// leaf/is_leaf entries rather than after: spec §6's worked tree-dump
// examples require the final, disambiguating guess to appear in its own
// rendered line ("apple GGGGG apple", not bare "apple"), which the
// original source's post-push recording would omit.
func (t *Tree) extractStacks(root *solver.Node) map[int][]int {
	out := make(map[int][]int)
	var path []int

	var walk func(n *solver.Node)
	walk = func(n *solver.Node) {
		path = append(path, n.GuessIndex)

		if n.IsLeaf {
			solIdx := t.indexOfSolution(t.ValidGuesses[n.GuessIndex])
			out[solIdx] = append([]int(nil), path...)
		}

		for _, leafSol := range n.Leaves {
			out[leafSol] = append([]int(nil), path...)
		}

		for _, c := range n.Children {
			walk(c)
		}

		path = path[:len(path)-1]
	}
	walk(root)
	return out
}

func (t *Tree) indexOfSolution(word string) int {
	for i, s := range t.Solutions {
		if s == word {
			return i
		}
	}
	return -1
}

// Render dumps every solution's guess path, sorted by path length then by
// (guessIndex, match) at each step — the same sort key original_source's
// print_tree packs as (num_guesses<<32)|(guess_index<<11)|match.
func (t *Tree) Render(root *solver.Node) string {
	stacksBySolution := t.extractStacks(root)

	stacks := make([]stack, 0, len(stacksBySolution))
	for solIdx, path := range stacksBySolution {
		stacks = append(stacks, stack{solutionIndex: solIdx, guessIndexes: path})
	}

	sort.Slice(stacks, func(i, j int) bool {
		return lessStack(t.Table, stacks[i], stacks[j])
	})

	var b strings.Builder
	for _, s := range stacks {
		t.writeStack(&b, s)
	}
	return b.String()
}

// RenderSolution dumps only the guess path leading to targetSolution.
func (t *Tree) RenderSolution(root *solver.Node, targetSolution string) (string, error) {
	solIdx := t.indexOfSolution(targetSolution)
	if solIdx < 0 {
		return "", wordle.NewSolutionNotFoundError(targetSolution)
	}

	stacksBySolution := t.extractStacks(root)
	path, ok := stacksBySolution[solIdx]
	if !ok {
		return "", fmt.Errorf("render: solution %q unreachable in this tree", targetSolution)
	}

	var b strings.Builder
	t.writeStack(&b, stack{solutionIndex: solIdx, guessIndexes: path})
	return b.String(), nil
}

func (t *Tree) writeStack(b *strings.Builder, s stack) {
	for _, guessIndex := range s.guessIndexes {
		match := t.Table.Lookup(guessIndex, s.solutionIndex)
		fmt.Fprintf(b, "%s %s ", t.ValidGuesses[guessIndex], t.Table.Strings[match])
	}
	b.WriteString(t.Solutions[s.solutionIndex])
	b.WriteByte('\n')
}

// lessStack compares two stacks lexicographically over per-step keys of
// (numGuesses<<32)|(guessIndex<<11)|match, exactly as print_tree sorts.
func lessStack(table *wordle.MatchTable, a, b stack) bool {
	ka := stackKeys(table, a)
	kb := stackKeys(table, b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return len(ka) < len(kb)
}

func stackKeys(table *wordle.MatchTable, s stack) []uint64 {
	numGuesses := uint64(len(s.guessIndexes))
	keys := make([]uint64, len(s.guessIndexes))
	for i, guessIndex := range s.guessIndexes {
		match := table.Lookup(guessIndex, s.solutionIndex)
		keys[i] = (numGuesses << 32) | (uint64(guessIndex) << 11) | uint64(match)
	}
	return keys
}
