package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// Engine holds the per-run state for one decision-tree search (spec §2-4).
// An Engine is not reentrant: Solve must not be called again, or
// concurrently, on the same instance while a prior call is in flight.
// Two independent Engine instances may run concurrently.
type Engine struct {
	table      *wordle.MatchTable
	pruneLimit int
	memo       *memo
	pool       *pool
	arena      *arena
}

// NewEngine builds an Engine from a pre-validated word list's match table.
func NewEngine(table *wordle.MatchTable) *Engine {
	return &Engine{
		table: table,
		pool:  newPool(),
	}
}

// Result owns the root decision node produced by Solve, plus the inputs
// needed to render or analyze it.
type Result struct {
	Root         *Node
	Table        *wordle.MatchTable
	NumSolutions int
}

// Solve is the search entry point (spec §4.3): it sets the prune limit,
// clears the memo, builds the initial feasible set {0..S-1}, and recurses
// from depth 0. Not safe to call concurrently on the same Engine.
func (e *Engine) Solve(pruneLimit int) *Result {
	if pruneLimit > e.table.NumGuesses-1 {
		pruneLimit = e.table.NumGuesses - 1
	}
	if pruneLimit < 1 {
		pruneLimit = 1
	}
	e.pruneLimit = pruneLimit
	e.memo = newMemo()
	e.arena = &arena{}

	initial := make([]int, e.table.NumSolutions)
	for i := range initial {
		initial[i] = i
	}

	root := e.search(initial, 0)
	return &Result{Root: root, Table: e.table, NumSolutions: e.table.NumSolutions}
}

// search is the recursive, memoized, depth-bounded step (spec §4.3).
func (e *Engine) search(feasible []int, depth int) *Node {
	key := memoKey(feasible)
	if cached, ok := e.memo.Get(key); ok && cached.withinDepthBudget(depth) {
		return cached
	}

	candidates := rankGuesses(e.table, feasible, e.pruneLimit)
	nodes := e.arena.newBlock(len(candidates))
	for i, c := range candidates {
		nodes[i].GuessIndex = c.guessIndex
	}

	tasks := make([]func(), len(nodes))
	for i := range nodes {
		node, guessIndex := nodes[i], candidates[i].guessIndex
		tasks[i] = func() {
			e.traverseMatches(node, guessIndex, feasible, depth)
		}
	}
	e.pool.runAll(tasks)

	chosen := e.chooseBest(nodes, depth)
	e.memo.Set(key, chosen)
	return chosen
}

// chooseBest picks the candidate with the lowest AverageDepth among those
// satisfying the depth budget, ties broken by lower position in the block
// (spec §4.3 step 4). If no candidate fits the budget, slot 0 is returned
// unconditionally — the degenerate tree-elision fallback (spec §7).
func (e *Engine) chooseBest(nodes []*Node, depth int) *Node {
	bestIdx := -1
	var bestAvg float64
	for i, n := range nodes {
		if !n.withinDepthBudget(depth) {
			continue
		}
		if bestIdx == -1 || n.AverageDepth() < bestAvg {
			bestIdx = i
			bestAvg = n.AverageDepth()
		}
	}
	if bestIdx == -1 {
		log.Warn().Int("depth", depth).Msg("solver: no candidate fits depth budget, eliding subtree")
		return nodes[0]
	}
	return nodes[bestIdx]
}

// traverseMatches partitions feasible by match[guessIndex, ·] into
// wordle.NumPatterns buckets and visits them in ascending pattern order,
// stopping as soon as traverseMatch signals the depth budget is blown
// (spec §4.3).
func (e *Engine) traverseMatches(node *Node, guessIndex int, feasible []int, depth int) {
	var buckets [wordle.NumPatterns][]int
	for _, s := range feasible {
		mv := e.table.Lookup(guessIndex, s)
		buckets[mv] = append(buckets[mv], s)
	}

	for pattern := 0; pattern < wordle.NumPatterns; pattern++ {
		if !e.traverseMatch(node, guessIndex, depth, buckets[pattern]) {
			break
		}
	}
}

// traverseMatch handles one feedback-pattern bucket: empty buckets are a
// no-op, singleton buckets are marked solved directly, and larger buckets
// recurse into search (spec §4.3).
func (e *Engine) traverseMatch(node *Node, guessIndex, depth int, bucket []int) bool {
	switch len(bucket) {
	case 0:
		return true
	case 1:
		e.markSolved(node, guessIndex, bucket[0])
		return true
	}

	child := e.search(bucket, depth+1)

	node.Children = append(node.Children, child)
	node.SolvedCount += child.SolvedCount
	// Each subtree solution sits one guess further away when viewed from
	// the parent, so solved_count is added again on top of total_depth.
	node.TotalDepth += child.SolvedCount + child.TotalDepth
	node.lowerMinDepth(child.MinDepth + 1)

	return node.withinDepthBudget(depth)
}

// markSolved records that guessIndex resolves solutionIndex, either
// immediately (all-greens) or one guess later (the unique remaining
// solution next turn) (spec §4.3).
func (e *Engine) markSolved(node *Node, guessIndex, solutionIndex int) {
	node.SolvedCount++
	node.TotalDepth++

	if e.table.Lookup(guessIndex, solutionIndex) == wordle.AllGreens {
		node.IsLeaf = true
		node.raiseMinDepthFloor(1)
		return
	}

	node.Leaves = append(node.Leaves, solutionIndex)
	node.TotalDepth++
	node.raiseMinDepthFloor(2)
}
