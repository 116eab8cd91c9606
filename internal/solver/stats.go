package solver

import "github.com/lorenzo-stoakes/wordle-solver/internal/wordle"

// Stats summarizes a Result as a guess-count histogram plus the overall
// average, matching original_source's get_stats/print_stats: counts[g] is
// the number of solutions solved in exactly g guesses (g up to MaxGuesses),
// and Unsolved is every solution the tree does not reach at all. A solution
// the tree reaches only after more than MaxGuesses guesses counts toward
// SolvedCount and the average but has no Counts entry.
type Stats struct {
	Counts      [wordle.MaxGuesses + 1]int
	Unsolved    int
	SolvedCount int
	TotalDepth  int
}

// AverageGuesses returns TotalDepth / SolvedCount across solved solutions
// only, 0 if nothing was solved.
func (s *Stats) AverageGuesses() float64 {
	if s.SolvedCount == 0 {
		return 0
	}
	return float64(s.TotalDepth) / float64(s.SolvedCount)
}

// ComputeStats walks the decision tree rooted at root and builds its
// guess-count histogram. numSolutions is the feasible-set size the tree
// was built over, used to derive Unsolved as the remainder.
func ComputeStats(root *Node, numSolutions int) *Stats {
	st := &Stats{}
	walkStats(root, 1, st)
	st.Unsolved = numSolutions - st.SolvedCount
	return st
}

// walkStats recurses through the tree, crediting each leaf to the guess
// count at which it is actually solved (the leaf's own depth, not the
// parent's), mirroring extract_tree_stacks' per-leaf depth accounting.
func walkStats(n *Node, depth int, st *Stats) {
	if n.IsLeaf {
		recordSolved(st, depth)
	}
	for range n.Leaves {
		recordSolved(st, depth+1)
	}
	for _, c := range n.Children {
		walkStats(c, depth+1, st)
	}
}

func recordSolved(st *Stats, guesses int) {
	st.SolvedCount++
	st.TotalDepth += guesses
	if guesses >= 0 && guesses < len(st.Counts) {
		st.Counts[guesses]++
	}
}
