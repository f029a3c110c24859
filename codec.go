package texhyph

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary format of a serialized pattern tree (all integers are varints):
//
//	magic "THYP", version byte, flags byte (bit 0 = compressed)
//	pattern count
//	code count C, then C records: digit count L, ceil(L/2) bytes of
//	    packed digits, high nibble first
//	node count N, then N records: own code, effective code, child count K,
//	    then K pairs (signed char, target node)
//
// Every entry of the code table is written once, so a compressed tree,
// which shares codes, serializes to fewer bytes.

const codecVersion = 1

var codecMagic = []byte("THYP")

func packDigits(code Code) []byte {
	packed := make([]byte, (len(code)+1)/2)
	for i, d := range code {
		if i%2 == 0 {
			packed[i/2] = d << 4
		} else {
			packed[i/2] |= d & 0x0F
		}
	}
	return packed
}

func unpackDigits(packed []byte, n int) (Code, error) {
	code := make(Code, n)
	for i := range code {
		b := packed[i/2]
		if i%2 == 0 {
			code[i] = b >> 4
		} else {
			code[i] = b & 0x0F
		}
		if code[i] > MaxWeight {
			return nil, fmt.Errorf("weight out of range (0..9): %d", code[i])
		}
	}
	return code, nil
}

// WriteTo serializes the tree to w. It implements io.WriterTo.
func (t *PatternTree) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 64*len(t.nodes))
	buf = append(buf, codecMagic...)
	var flags byte
	if t.compressed {
		flags |= 1
	}
	buf = append(buf, codecVersion, flags)
	buf = binary.AppendUvarint(buf, uint64(t.patterns))
	buf = binary.AppendUvarint(buf, uint64(len(t.codes)-1))
	for _, code := range t.codes[1:] {
		buf = binary.AppendUvarint(buf, uint64(len(code)))
		buf = append(buf, packDigits(code)...)
	}
	buf = binary.AppendUvarint(buf, uint64(len(t.nodes)))
	for _, node := range t.nodes {
		buf = binary.AppendUvarint(buf, uint64(node.own))
		buf = binary.AppendUvarint(buf, uint64(node.eff))
		buf = binary.AppendUvarint(buf, uint64(len(node.children)))
		for _, e := range node.children {
			buf = binary.AppendVarint(buf, int64(e.char))
			buf = binary.AppendUvarint(buf, uint64(e.to))
		}
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// SerializedSize returns the number of bytes WriteTo would produce.
func (t *PatternTree) SerializedSize() int {
	n, _ := t.WriteTo(io.Discard)
	return int(n)
}

// ReadPatternTree de-serializes a pattern tree written by WriteTo.
// A tree which was compressed when written will be compressed (and frozen)
// again.
func ReadPatternTree(r io.Reader) (*PatternTree, error) {
	br := bufio.NewReader(r)
	header := make([]byte, len(codecMagic)+2)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("reading pattern tree header: %w", err)
	}
	if string(header[:len(codecMagic)]) != string(codecMagic) {
		return nil, errors.New("not a serialized pattern tree")
	}
	if v := header[len(codecMagic)]; v != codecVersion {
		return nil, fmt.Errorf("unsupported pattern tree version %d", v)
	}
	compressed := header[len(codecMagic)+1]&1 != 0
	d := decoder{r: br}
	t := &PatternTree{}
	t.patterns = int(d.uint())
	ncodes := d.uint()
	t.codes = make([]Code, 1, min(ncodes+1, 1<<16))
	for i := uint64(0); i < ncodes && d.err == nil; i++ {
		l := int(d.uint())
		packed := d.bytes((l + 1) / 2)
		if d.err != nil {
			break
		}
		code, err := unpackDigits(packed, l)
		if err != nil {
			return nil, err
		}
		t.codes = append(t.codes, code)
	}
	nnodes := d.uint()
	t.nodes = make([]treeNode, 0, min(nnodes, 1<<16))
	for i := uint64(0); i < nnodes && d.err == nil; i++ {
		node := treeNode{
			own: d.codeRef(len(t.codes)),
			eff: d.codeRef(len(t.codes)),
		}
		k := d.uint()
		for j := uint64(0); j < k && d.err == nil; j++ {
			char := rune(d.int())
			to := d.uint()
			if to >= nnodes {
				d.err = fmt.Errorf("node reference out of range: %d", to)
				break
			}
			node.children = append(node.children, edge{char: char, to: nodeRef(to)})
		}
		t.nodes = append(t.nodes, node)
	}
	if d.err != nil {
		return nil, fmt.Errorf("reading pattern tree: %w", d.err)
	}
	if len(t.nodes) == 0 {
		return nil, errors.New("pattern tree without root node")
	}
	if compressed {
		t.compressed = true
		t.freeze()
	}
	return t, nil
}

// decoder remembers the first error, so decoding code can stay linear.
type decoder struct {
	r   *bufio.Reader
	err error
}

func (d *decoder) uint() uint64 {
	if d.err != nil {
		return 0
	}
	var v uint64
	v, d.err = binary.ReadUvarint(d.r)
	return v
}

func (d *decoder) int() int64 {
	if d.err != nil {
		return 0
	}
	var v int64
	v, d.err = binary.ReadVarint(d.r)
	return v
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	b := make([]byte, n)
	_, d.err = io.ReadFull(d.r, b)
	return b
}

func (d *decoder) codeRef(ncodes int) int32 {
	v := d.uint()
	if d.err == nil && v >= uint64(ncodes) {
		d.err = fmt.Errorf("code reference out of range: %d", v)
	}
	return int32(v)
}
