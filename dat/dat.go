package dat

// DAT is a frozen double-array trie.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - Value[s] is an opaque payload reference for state s, 0 meaning "none".
//     Clients use it as an index into their own payload tables.
//
// Mapping:
//   - Alphabet maps code points (and a few negative sentinel runes) to
//     dense alphabet IDs. 0 means "not part of the alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	// Bases are kept non-negative; int32 for compactness.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds payload references for states.
	Value []int32 // len == N

	// Alphabet maps runes to dense IDs [0..Sigma].
	Alphabet PagedMap
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Used returns the number of occupied slots, including the root.
func (d *DAT) Used() int {
	used := 0
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
		}
	}
	return used
}

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 { return d.Alphabet.Dense(r) }
