package texhyph

import (
	"slices"

	"github.com/npillmayer/texhyph/dat"
)

// DuplicatePolicy decides what happens if a pattern is inserted more than
// once with different weights.
type DuplicatePolicy int

const (
	// SuperimposeDuplicates merges the weights of duplicate patterns
	// (element-wise maximum). Inserting an identical pattern twice is a no-op.
	SuperimposeDuplicates DuplicatePolicy = iota
	// RejectDuplicates makes Insert fail with ErrDuplicateHyphenation if the
	// letters of a pattern are already present with different weights.
	RejectDuplicates
)

type nodeRef int32

const rootNode nodeRef = 0

type edge struct {
	char rune
	to   nodeRef
}

// treeNode is an entry of the node arena. Codes are referenced by index into
// the tree's code table, 0 meaning "no code".
type treeNode struct {
	children []edge // sorted by char
	own      int32  // code of the pattern ending here
	eff      int32  // superposition of all pattern codes on the path to here
}

// PatternTree is a trie of hyphenation patterns. Every pattern is a sequence
// of characters (including the sentinels WordStart and WordEnd) mapped to a
// weight Code.
//
// A tree is built single-threaded. Once all patterns are inserted, Lookup may
// be called concurrently. After Compress the tree is immutable.
type PatternTree struct {
	Duplicates DuplicatePolicy // policy for duplicate patterns, default is to superimpose
	nodes      []treeNode      // node arena, nodes[0] is the root
	codes      []Code          // code table, codes[0] is unused
	patterns   int             // number of distinct patterns
	compressed bool
	frozen     *dat.DAT // transition table of a compressed tree
}

// NewPatternTree creates an empty pattern tree.
func NewPatternTree() *PatternTree {
	t := &PatternTree{
		nodes: make([]treeNode, 1, 256),
		codes: make([]Code, 1, 256),
	}
	return t
}

// PatternCount returns the number of distinct patterns in the tree.
func (t *PatternTree) PatternCount() int {
	return t.patterns
}

// Compressed returns true if the tree has been compressed (and is immutable).
func (t *PatternTree) Compressed() bool {
	return t.compressed
}

// Insert adds a pattern, given as a sequence of letter and digit tokens.
// Digits denote the weight of the gap in front of the next letter (or behind
// the last letter).
//
// Insert either inserts the complete pattern or leaves the tree untouched.
// It returns a *PatternError, which matches ErrMalformedPattern,
// ErrImmutableTree or ErrDuplicateHyphenation.
func (t *PatternTree) Insert(tokens []Token) error {
	if t.compressed {
		return &PatternError{
			Kind:    ImmutableTree,
			Pattern: TokensString(tokens),
			Issue:   "cannot insert into a compressed pattern tree",
		}
	}
	chars, code, perr := compilePattern(tokens)
	if perr != nil {
		return perr
	}
	if n, ok := t.find(chars); ok && t.nodes[n].own != 0 {
		old := t.codes[t.nodes[n].own]
		if old.Equal(code) {
			tracer().Debugf("pattern %s already present", patternString(chars, code))
			return nil
		}
		if t.Duplicates == RejectDuplicates {
			return &PatternError{
				Kind:    DuplicateHyphenation,
				Pattern: patternString(chars, code),
				Issue:   "letters already present as " + patternString(chars, old),
			}
		}
	}
	// validation done, from here on nothing may fail
	path := t.ensurePath(chars)
	n := path[len(path)-1]
	if own := t.nodes[n].own; own != 0 {
		t.codes[own] = t.codes[own].Clone().Superimpose(code, 0)
	} else {
		t.nodes[n].own = t.addCode(code)
		t.patterns++
	}
	t.propagate(n, t.inheritedCode(path))
	return nil
}

// InsertString parses a pattern in TeX notation (e.g. "ad5er.") and inserts it.
func (t *PatternTree) InsertString(pattern string) error {
	tokens, err := ParsePattern(pattern)
	if err != nil {
		return err
	}
	if err = t.Insert(tokens); err != nil {
		if perr, ok := err.(*PatternError); ok {
			perr.Pattern = pattern
		}
	}
	return err
}

// Lookup finds the longest prefix of chars[from:] which is a path of the tree
// ending in a pattern, and returns its code. The code contains the
// superposition of every pattern which is a prefix of chars[from:].
// If no pattern matches, a zero code of length 1 is returned.
//
// The returned code is shared with the tree and must not be modified.
// Lookup does not allocate.
func (t *PatternTree) Lookup(chars []rune, from int) Code {
	if t.frozen != nil {
		return t.lookupFrozen(chars, from)
	}
	n, found := rootNode, int32(0)
	for i := from; i < len(chars); i++ {
		next, ok := t.child(n, chars[i])
		if !ok {
			break
		}
		n = next
		if e := t.nodes[n].eff; e != 0 {
			found = e
		}
	}
	if found == 0 {
		return zeroCode
	}
	return t.codes[found]
}

func (t *PatternTree) lookupFrozen(chars []rune, from int) Code {
	d := t.frozen
	state, found := d.Root, int32(0)
	for i := from; i < len(chars); i++ {
		c := d.Dense(chars[i])
		if c == 0 {
			break
		}
		next, ok := d.Transition(state, c)
		if !ok {
			break
		}
		state = next
		if v := d.Value[state]; v != 0 {
			found = v
		}
	}
	if found == 0 {
		return zeroCode
	}
	return t.codes[found]
}

// Pattern returns the weights of the pattern consisting exactly of chars.
func (t *PatternTree) Pattern(chars []rune) (Code, bool) {
	n, ok := t.find(chars)
	if !ok || t.nodes[n].own == 0 {
		return nil, false
	}
	return t.codes[t.nodes[n].own], true
}

// --- Arena handling --------------------------------------------------------

func (t *PatternTree) child(n nodeRef, r rune) (nodeRef, bool) {
	children := t.nodes[n].children
	lo, hi := 0, len(children)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		switch c := children[m].char; {
		case c == r:
			return children[m].to, true
		case c < r:
			lo = m + 1
		default:
			hi = m
		}
	}
	return 0, false
}

func (t *PatternTree) find(chars []rune) (nodeRef, bool) {
	n := rootNode
	for _, r := range chars {
		next, ok := t.child(n, r)
		if !ok {
			return 0, false
		}
		n = next
	}
	return n, true
}

// ensurePath creates missing nodes for chars and returns the path of nodes,
// starting at the root.
func (t *PatternTree) ensurePath(chars []rune) []nodeRef {
	path := make([]nodeRef, 1, len(chars)+1)
	n := rootNode
	for _, r := range chars {
		next, ok := t.child(n, r)
		if !ok {
			next = nodeRef(len(t.nodes))
			t.nodes = append(t.nodes, treeNode{})
			children := t.nodes[n].children
			i, _ := slices.BinarySearchFunc(children, r, func(e edge, r rune) int {
				return int(e.char) - int(r)
			})
			t.nodes[n].children = slices.Insert(children, i, edge{char: r, to: next})
		}
		n = next
		path = append(path, n)
	}
	return path
}

func (t *PatternTree) addCode(code Code) int32 {
	t.codes = append(t.codes, code)
	return int32(len(t.codes) - 1)
}

// inheritedCode returns the effective code of the deepest pattern node on
// path, not considering the last node of path.
func (t *PatternTree) inheritedCode(path []nodeRef) Code {
	var inherited Code
	for _, n := range path[:len(path)-1] {
		if e := t.nodes[n].eff; e != 0 {
			inherited = t.codes[e]
		}
	}
	return inherited
}

// propagate recomputes the effective codes of n and all of its descendants.
// Effective codes are the superposition of all codes on the path from the
// root, which makes superposition independent of insertion order.
func (t *PatternTree) propagate(n nodeRef, inherited Code) {
	if own := t.nodes[n].own; own != 0 {
		eff := inherited.Clone().Superimpose(t.codes[own], 0)
		if t.nodes[n].eff == 0 {
			t.nodes[n].eff = t.addCode(eff)
		} else {
			t.codes[t.nodes[n].eff] = eff
		}
		inherited = eff
	}
	for _, e := range t.nodes[n].children {
		t.propagate(e.to, inherited)
	}
}

// --- Enumeration -----------------------------------------------------------

// Walk calls fn for every pattern of the tree, in depth-first order with
// children sorted by character. Sentinels sort before letters.
// chars is re-used between calls. Walk stops if fn returns false.
func (t *PatternTree) Walk(fn func(chars []rune, code Code) bool) {
	chars := make([]rune, 0, 32)
	t.walk(rootNode, chars, fn)
}

func (t *PatternTree) walk(n nodeRef, chars []rune, fn func([]rune, Code) bool) bool {
	if own := t.nodes[n].own; own != 0 {
		if !fn(chars, t.codes[own]) {
			return false
		}
	}
	for _, e := range t.nodes[n].children {
		if !t.walk(e.to, append(chars, e.char), fn) {
			return false
		}
	}
	return true
}

// Visit traverses the sub-tree below prefix in pre-order. fn receives the
// depth relative to prefix (starting at 1), the character of the edge leading
// to the node and the code of the pattern ending there (nil if none).
// Visit returns false if prefix is not a path of the tree.
func (t *PatternTree) Visit(prefix []rune, fn func(depth int, char rune, code Code)) bool {
	n, ok := t.find(prefix)
	if !ok {
		return false
	}
	t.visit(n, 1, fn)
	return true
}

func (t *PatternTree) visit(n nodeRef, depth int, fn func(int, rune, Code)) {
	for _, e := range t.nodes[n].children {
		var code Code
		if own := t.nodes[e.to].own; own != 0 {
			code = t.codes[own]
		}
		fn(depth, e.char, code)
		t.visit(e.to, depth+1, fn)
	}
}

// TreeStats reports size metrics of a pattern tree.
type TreeStats struct {
	Nodes       int  // number of trie nodes, including the root
	Patterns    int  // number of distinct patterns
	Codes       int  // number of entries of the code table
	Compressed  bool // tree is compressed
	FrozenSlots int  // size of the double-array of a compressed tree
	FrozenUsed  int  // occupied slots of the double-array
}

// FillRatio is the fraction of occupied double-array slots.
func (s TreeStats) FillRatio() float64 {
	if s.FrozenSlots == 0 {
		return 0
	}
	return float64(s.FrozenUsed) / float64(s.FrozenSlots)
}

// Stats returns size metrics for t.
func (t *PatternTree) Stats() TreeStats {
	stats := TreeStats{
		Nodes:      len(t.nodes),
		Patterns:   t.patterns,
		Codes:      len(t.codes) - 1,
		Compressed: t.compressed,
	}
	if t.frozen != nil {
		stats.FrozenSlots, stats.FrozenUsed = t.frozen.NStates(), t.frozen.Used()
	}
	return stats
}
