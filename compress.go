package texhyph

import (
	"github.com/npillmayer/texhyph/dat"
)

// Compress shares identical codes across the tree and freezes it into a
// double-array trie. Matching results are not affected.
//
// Compression is irreversible: afterwards every Insert fails with
// ErrImmutableTree. Calling Compress more than once is a no-op.
func (t *PatternTree) Compress() {
	if t.compressed {
		return
	}
	canonical := make(map[string]int32, len(t.codes)/2)
	codes := make([]Code, 1, len(t.codes)/2+1)
	intern := func(idx int32) int32 {
		if idx == 0 {
			return 0
		}
		code := t.codes[idx]
		if c, ok := canonical[code.key()]; ok {
			return c
		}
		codes = append(codes, code)
		c := int32(len(codes) - 1)
		canonical[code.key()] = c
		return c
	}
	stack := []nodeRef{rootNode}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := &t.nodes[n]
		node.own = intern(node.own)
		node.eff = intern(node.eff)
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i].to)
		}
	}
	assertThat(len(codes) <= len(t.codes), "compression added codes")
	tracer().Infof("compressed pattern tree: %d codes → %d shared codes", len(t.codes)-1, len(codes)-1)
	t.codes = codes
	t.compressed = true
	t.freeze()
}

// freeze compiles the node arena into a double-array trie, which will be
// used for lookups from then on. If compilation fails, lookups continue to
// use the node arena.
func (t *PatternTree) freeze() {
	d, err := dat.Compile(treeSource{t}, int32(rootNode))
	if err != nil {
		tracer().Errorf("cannot freeze pattern tree: %v", err)
		return
	}
	t.frozen = d
	stats := t.Stats()
	tracer().Infof("pattern trie stats backend=dat used=%d total=%d fill=%.2f",
		stats.FrozenUsed, stats.FrozenSlots, stats.FillRatio())
}

// treeSource presents the node arena to the double-array compiler.
// Node values are the effective codes.
type treeSource struct {
	t *PatternTree
}

func (src treeSource) Edges(node int32) ([]rune, []int32) {
	children := src.t.nodes[node].children
	labels := make([]rune, len(children))
	targets := make([]int32, len(children))
	for i, e := range children {
		labels[i], targets[i] = e.char, int32(e.to)
	}
	return labels, targets
}

func (src treeSource) Value(node int32) int32 {
	return src.t.nodes[node].eff
}

var _ dat.Source = treeSource{}
