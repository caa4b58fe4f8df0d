package huffman

// maxCodeLen is the widest code the bit writer can emit in one call.
const maxCodeLen = 64

// Code is the bit pattern of a symbol, stored in the Len low bits of Bits
// with the first bit to emit being the most significant one.
type Code struct {
	Bits  uint64
	Len   uint8
	Valid bool
}

// CodeTable maps every byte value to its code. Only symbols present in the
// tree have a valid entry.
type CodeTable [256]Code

// Codes walks the tree depth first, appending 0 for the left branch and 1
// for the right one. Leaves are visited left to right, so in a single
// symbol tree the right leaf's code "1" is the one that sticks.
//
// Paths longer than 64 bits are recorded with Valid unset.
func (t *Tree) Codes() *CodeTable {
	var ct CodeTable
	assignCodes(t.root, &ct, 0, 0)
	return &ct
}

func assignCodes(n *Node, ct *CodeTable, bits uint64, depth int) {
	if n.Leaf() {
		ct[n.Symbol] = Code{
			Bits:  bits,
			Len:   uint8(depth),
			Valid: depth > 0 && depth <= maxCodeLen,
		}
		return
	}
	for p := uint64(0); p < 2; p++ {
		assignCodes(n.next[p], ct, bits<<1|p, depth+1)
	}
}
