package solver

import (
	"strconv"
	"strings"
	"sync"
)

// memo is the mutex-protected feasible-solutions-set -> *Node table
// (spec §4.4, §9). The mutex is held only for the map operation itself,
// never across recursive calls or node mutation, so two workers may race
// to compute the same key; the second Set wins and the first node
// becomes unreachable via the memo while remaining reachable as a child
// of whichever parent spawned it. This is accepted, not guarded against.
type memo struct {
	mu sync.Mutex
	m  map[string]*Node
}

func newMemo() *memo {
	return &memo{m: make(map[string]*Node)}
}

// Get returns the cached node for key, if any.
func (mm *memo) Get(key string) (*Node, bool) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	n, ok := mm.m[key]
	return n, ok
}

// Set stores the node for key, overwriting any prior value.
func (mm *memo) Set(key string, n *Node) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.m[key] = n
}

// memoKey builds the canonical memo key for a feasible-solutions set.
// Solution-index sets arrive already sorted ascending, since they
// originate from the initial 0..S enumeration and are only ever filtered
// (never reordered) by pattern partitioning (spec §9), so joining the
// indexes directly is a sound, order-canonical key.
func memoKey(solutionIndexes []int) string {
	var b strings.Builder
	for i, s := range solutionIndexes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}
