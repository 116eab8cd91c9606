// Package solver implements the decision-tree search engine: the Guess
// Ranker, the recursive depth-bounded memoized search, and the bounded
// worker pool that parallelizes candidate exploration (spec §4).
package solver

import "github.com/lorenzo-stoakes/wordle-solver/internal/wordle"

// Node is the decision tree's vertex type (spec §3).
type Node struct {
	GuessIndex  int
	Children    []*Node
	Leaves      []int // solution indexes solved one guess after GuessIndex
	IsLeaf      bool
	SolvedCount int
	TotalDepth  int
	MinDepth    int // 0 means "unset"; see spec §9's Open Question
}

// AverageDepth returns total_depth / solved_count, the metric the Engine
// uses to pick the best candidate at a node (spec §4.3).
func (n *Node) AverageDepth() float64 {
	if n.SolvedCount == 0 {
		return 0
	}
	return float64(n.TotalDepth) / float64(n.SolvedCount)
}

// withinDepthBudget reports whether this node's subtree still fits the
// MAX_GUESSES budget when entered at depth. A MinDepth of 0 means no leaf
// or child ever promoted it (spec §9's "vacuous" case) and is treated as
// failing the budget, never as spuriously satisfying it.
func (n *Node) withinDepthBudget(depth int) bool {
	if n.MinDepth == 0 {
		return false
	}
	return depth+n.MinDepth <= wordle.MaxGuesses
}

// raiseMinDepthFloor ensures MinDepth is at least floor, without ever
// lowering an already-higher value. Used when a leaf is marked solved
// directly (spec §4.3's mark_solved): zero is itself the lowest valid
// floor, so an ordinary "raise to at least floor" needs no unset
// special-case here.
func (n *Node) raiseMinDepthFloor(floor int) {
	if n.MinDepth < floor {
		n.MinDepth = floor
	}
}

// lowerMinDepth adopts candidate if it is smaller than the current
// MinDepth, treating an unset (zero) MinDepth as positive infinity rather
// than zero — the inverse of raiseMinDepthFloor's treatment of zero, and
// the fix for spec §9's Open Question: a naive min(0, candidate) would
// wrongly stay at zero forever.
func (n *Node) lowerMinDepth(candidate int) {
	if n.MinDepth == 0 || candidate < n.MinDepth {
		n.MinDepth = candidate
	}
}

// arena owns every Node block allocated during one Solve call. Nodes for a
// single recursive call are allocated together as one block (spec §3's
// "contiguous allocation"); the arena keeps every block alive so the
// memo table may safely alias child pointers across parents without
// risking a double free (spec §9). Releasing the arena is a single,
// allocation-free no-op — there is nothing to walk or delete[].
type arena struct {
	blocks [][]Node
}

// newBlock allocates a contiguous block of n nodes and returns pointers
// into it. The chosen candidate is not moved to slot 0: the engine returns
// the chosen node's pointer directly, and the arena keeps the whole block
// alive.
func (a *arena) newBlock(n int) []*Node {
	block := make([]Node, n)
	a.blocks = append(a.blocks, block)
	ptrs := make([]*Node, n)
	for i := range block {
		ptrs[i] = &block[i]
	}
	return ptrs
}
