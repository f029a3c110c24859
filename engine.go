package texhyph

import (
	"strings"
)

// Breakpoints is the result of hyphenating a word of n characters.
// It has n+1 entries, one per gap: entry k is true if the word may be
// hyphenated between character k-1 and character k.
type Breakpoints []bool

// Any returns true if at least one break is allowed.
func (bp Breakpoints) Any() bool {
	for _, b := range bp {
		if b {
			return true
		}
	}
	return false
}

// Positions returns the indices of all allowed breaks, in increasing order.
func (bp Breakpoints) Positions() []int {
	var pos []int
	for k, b := range bp {
		if b {
			pos = append(pos, k)
		}
	}
	return pos
}

// Split splits word at the allowed breaks.
// word must be the word bp has been computed for.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
func (bp Breakpoints) Split(word []rune) []string {
	var syllables []string
	prev := 0
	for k := 1; k < len(bp) && k < len(word); k++ {
		if bp[k] {
			syllables = append(syllables, string(word[prev:k]))
			prev = k
		}
	}
	return append(syllables, string(word[prev:]))
}

// String renders breakpoints as a sequence of '-' (break) and '.' (no break).
func (bp Breakpoints) String() string {
	var sb strings.Builder
	for _, b := range bp {
		if b {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Hyphenate computes the hyphenation points of word from the patterns of tree.
//
// Every pattern matching anywhere inside the word, including the word
// boundaries, contributes its weights; overlapping weights are merged by
// taking the maximum. Gaps with odd weights are legal break points, with the
// exception of gaps with fewer than leftMin letters in front of them or fewer
// than rightMin letters behind them. leftMin and rightMin are at least 1;
// words not longer than leftMin+rightMin are never hyphenated.
//
// word is expected to be normalized (e.g., lower-cased) for matching.
// Hyphenate does not modify tree and may be called concurrently.
// If no break is allowed, the result contains only false entries.
func Hyphenate(word []rune, leftMin, rightMin int, tree *PatternTree) Breakpoints {
	n := len(word)
	bp := make(Breakpoints, n+1)
	leftMin, rightMin = max(leftMin, 1), max(rightMin, 1)
	if n < 2 || leftMin+rightMin >= n || tree == nil || tree.PatternCount() == 0 {
		return bp
	}
	ext := make([]rune, n+2) // [START, word…, END]
	ext[0], ext[n+1] = WordStart, WordEnd
	copy(ext[1:], word)
	// hyph[m] is the weight of the gap in front of ext[m]; the gap in front
	// of word[k] is hyph[k+1]
	hyph := make(Code, n+3)
	for i := range ext {
		code := tree.Lookup(ext, i)
		hyph = hyph.Superimpose(code, i)
	}
	found := false
	for k := leftMin; k <= n-rightMin; k++ {
		if hyph[k+1]%2 == 1 {
			bp[k] = true
			found = true
		}
	}
	if found {
		tracer().Debugf("hyphenate %q: weights=%v → %s", string(word), hyph[1:n+2], bp)
	}
	return bp
}
