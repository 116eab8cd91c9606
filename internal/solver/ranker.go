package solver

import (
	"container/heap"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// scoredGuess pairs a guess index with its average-solutions-per-unique-
// match score (spec §4.2).
type scoredGuess struct {
	avg        float64
	guessIndex int
}

// rankGuesses returns the top-K candidate guesses for the feasible set F,
// scored by avg(g) = (|F| - delta) / U(g, F) (spec §4.2). Ties break by
// ascending guess index (stable selection).
//
// Grounded on original_source's get_best_unique_match_guesses /
// avg_solutions_per_unique_match. Uses container/heap for the bounded
// top-K selection, per spec §9's "bounded max-heap... O(G log K)"
// suggestion — no pack example ships a priority-queue library, and
// container/heap is the idiomatic stdlib answer to exactly this shape.
func rankGuesses(table *wordle.MatchTable, solutionIndexes []int, pruneLimit int) []scoredGuess {
	numGuesses := table.NumGuesses
	k := pruneLimit
	if k > numGuesses-1 {
		k = numGuesses - 1
	}
	if k < 1 {
		k = 1
	}

	var seen [wordle.NumPatterns]bool
	top := &guessHeap{}
	heap.Init(top)

	for g := 0; g < numGuesses; g++ {
		for i := range seen {
			seen[i] = false
		}
		uniqueMatches := 0
		selfSolves := false
		for _, s := range solutionIndexes {
			mv := table.Lookup(g, s)
			if !seen[mv] {
				seen[mv] = true
				uniqueMatches++
			}
			if mv == wordle.AllGreens {
				selfSolves = true
			}
		}

		numSolutions := len(solutionIndexes)
		if selfSolves {
			numSolutions--
		}
		avg := float64(numSolutions) / float64(uniqueMatches)

		// Early exit: this guess alone resolves every feasible solution to a
		// unique one-solution partition, so one more guess always suffices.
		if avg < 1 {
			return []scoredGuess{{avg: avg, guessIndex: g}}
		}

		heap.Push(top, scoredGuess{avg: avg, guessIndex: g})
		if top.Len() > k {
			heap.Pop(top)
		}
	}

	result := make([]scoredGuess, top.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(top).(scoredGuess)
	}
	return result
}

// guessHeap is a max-heap on (avg, guessIndex) so the smallest pruneLimit
// scores survive: popping the heap's max evicts the worst-scoring
// candidate currently retained. Ties break toward the lower guess index by
// treating a larger index as "worse" at equal avg, matching the spec's
// ascending-index stability rule under a bounded-size max-heap.
type guessHeap []scoredGuess

func (h guessHeap) Len() int { return len(h) }
func (h guessHeap) Less(i, j int) bool {
	if h[i].avg != h[j].avg {
		return h[i].avg > h[j].avg
	}
	return h[i].guessIndex > h[j].guessIndex
}
func (h guessHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *guessHeap) Push(x any)   { *h = append(*h, x.(scoredGuess)) }
func (h *guessHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
