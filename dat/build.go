package dat

import (
	"fmt"
	"sort"
)

// Source is a trie to be compiled into a double-array.
// Nodes are identified by non-negative integers.
type Source interface {
	// Edges returns the labels and target nodes of the children of node.
	Edges(node int32) (labels []rune, targets []int32)
	// Value returns the payload reference of node (0 for none).
	Value(node int32) int32
}

// Compile builds a double-array trie from the trie src, starting at node root.
// Dense alphabet IDs are assigned in order of first appearance (breadth-first).
// It returns an error if the alphabet exceeds 65535 symbols or contains
// runes a PagedMap cannot store.
func Compile(src Source, root int32) (*DAT, error) {
	d := &DAT{Root: 1}
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = make([]int32, int(d.Root)+1)
	d.Value[d.Root] = src.Value(root)
	type item struct {
		node  int32
		state uint32
	}
	queue := []item{{node: root, state: d.Root}}
	low := 2 // all slots below low are occupied
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		labels, targets := src.Edges(n.node)
		if len(labels) == 0 {
			continue
		}
		dense := make([]uint16, len(labels))
		for i, r := range labels {
			c := d.Alphabet.Dense(r)
			if c == 0 {
				if d.Sigma == ^uint16(0) {
					return nil, fmt.Errorf("alphabet too large for double-array")
				}
				d.Sigma++
				c = d.Sigma
				if !d.Alphabet.Set(r, c) {
					return nil, fmt.Errorf("rune %d cannot be mapped to double-array alphabet", r)
				}
			}
			dense[i] = c
		}
		order := make([]int, len(dense))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return dense[order[i]] < dense[order[j]]
		})
		base := findBase(d.Check, dense, low-int(dense[order[0]]))
		ensureIndex(d, base+int(dense[order[len(order)-1]]))
		d.Base[n.state] = int32(base)
		for _, i := range order {
			t := base + int(dense[i])
			d.Check[t] = int32(n.state)
			d.Value[t] = src.Value(targets[i])
			queue = append(queue, item{node: targets[i], state: uint32(t)})
		}
		for low < len(d.Check) && d.Check[low] != 0 {
			low++
		}
	}
	return d, nil
}

// findBase finds the smallest base >= from for which all slots base+label
// are free. Slot 0 and the root slot are never free.
func findBase(check []int32, labels []uint16, from int) int {
	for base := max(1, from); ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t <= 1 || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Value = append(d.Value, make([]int32, grow)...)
}
