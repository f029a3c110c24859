package dat

import "unicode"

// NegativeRunes is the number of negative rune values (-1 … -NegativeRunes)
// a PagedMap is able to map. Clients use them as sentinels.
const NegativeRunes = 4

const numTopEntries = (unicode.MaxRune >> 8) + 1

// PagedMap maps code points (0..MaxRune) to dense alphabet IDs (uint16).
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 4352 * 2 = 8704 bytes
//   - Each populated page: 256 * 2 = 512 bytes
//
// So if you touch, say, 10 high-byte blocks => ~5 KB for pages.
type PagedMap struct {
	Top   [numTopEntries]uint16 // page index (1-based); 0 means none
	Pages []uint16              // flat: NumPages*256
	Neg   [NegativeRunes]uint16 // IDs for runes -1 … -NegativeRunes
}

// Dense returns the dense alphabet ID for a rune.
// Returns 0 if absent.
func (m *PagedMap) Dense(r rune) uint16 {
	if r < 0 {
		if r < -NegativeRunes {
			return 0
		}
		return m.Neg[-r-1]
	}
	if r > unicode.MaxRune {
		return 0
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> 8 }

// EnsurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (m *PagedMap) EnsurePage(hi rune) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> dense (dense may be 0 to clear).
// Runes outside of the mappable range are ignored and Set returns false.
func (m *PagedMap) Set(r rune, dense uint16) bool {
	if r < 0 {
		if r < -NegativeRunes {
			return false
		}
		m.Neg[-r-1] = dense
		return true
	}
	if r > unicode.MaxRune {
		return false
	}
	hi := r >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return true
		}
		pi = m.EnsurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(r&0xFF)] = dense
	return true
}
