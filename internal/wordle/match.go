package wordle

// MatchValue is the packed base-3 feedback-pattern value for a single
// (guess, solution) pair (spec §3): 0=grey, 1=yellow, 2=green per letter,
// position i contributing verdict_i * 3^i.
type MatchValue uint8

// MatchTable is the dense (guess, solution) feedback matrix plus the
// parallel table of human-readable pattern strings, computed once at
// construction (spec §3, §4.1) and never mutated thereafter.
type MatchTable struct {
	NumGuesses   int
	NumSolutions int
	Values       []MatchValue // flat, size NumGuesses*NumSolutions
	Strings      [NumPatterns]string
}

// BuildMatchTable computes the match matrix and pattern strings for every
// (guess, solution) pair. Grounded on the teacher's internal/game/engine.go
// two-pass scoreGuess for style and on original_source's calc_match_val for
// exact semantics: the second pass is a left-to-right position search
// (not a frequency count), so the first *unconsumed* occurrence wins —
// this is what makes the duplicate-letter scenario in spec §8 ("allee" vs
// "later") come out the way it does.
func BuildMatchTable(guesses, solutions []string) *MatchTable {
	t := &MatchTable{
		NumGuesses:   len(guesses),
		NumSolutions: len(solutions),
		Values:       make([]MatchValue, len(guesses)*len(solutions)),
	}
	for gi, g := range guesses {
		for si, s := range solutions {
			val, str := computeMatch(g, s)
			t.Values[gi*len(solutions)+si] = val
			// Idempotent: two (g, s) pairs that yield the same value always
			// produce the same string, so last-write-wins is safe.
			t.Strings[val] = str
		}
	}
	return t
}

// Lookup returns the match value for the given guess/solution index pair.
func (t *MatchTable) Lookup(guessIndex, solutionIndex int) MatchValue {
	return t.Values[guessIndex*t.NumSolutions+solutionIndex]
}

// computeMatch implements spec §4.1's two-pass algorithm for a single
// (guess, solution) pair of length Len.
func computeMatch(guess, solution string) (MatchValue, string) {
	var consumed [Len]bool
	verdict := [Len]byte{'.', '.', '.', '.', '.'}
	var value int

	// Pass 1, left to right: mark exact position matches green, consume
	// that solution letter so pass 2 can't reuse it.
	for i := 0; i < Len; i++ {
		if guess[i] == solution[i] {
			verdict[i] = 'G'
			consumed[i] = true
		}
	}

	// Pass 2, left to right: for each non-green guess letter, search the
	// solution left to right for the first unconsumed occurrence.
	for i := 0; i < Len; i++ {
		if verdict[i] == 'G' {
			continue
		}
		for j := 0; j < Len; j++ {
			if consumed[j] {
				continue
			}
			if solution[j] == guess[i] {
				verdict[i] = 'y'
				consumed[j] = true
				break
			}
		}
	}

	mult := 1
	for i := 0; i < Len; i++ {
		switch verdict[i] {
		case 'G':
			value += 2 * mult
		case 'y':
			value += 1 * mult
		}
		mult *= 3
	}

	return MatchValue(value), string(verdict[:])
}
