package huffman

// Node is either a leaf carrying a symbol or an internal node with exactly
// two children. Weight is the sum of the counts of the leaves below it.
type Node struct {
	Weight uint64
	Symbol byte

	next [2]*Node
}

func (n *Node) Leaf() bool { return n.next[0] == nil }

// Child returns the left child for bit 0 and the right child for bit 1.
// It returns nil on a leaf.
func (n *Node) Child(bit uint8) *Node { return n.next[bit&1] }

// Tree is a prefix tree built from a FrequencyTable.
type Tree struct {
	root   *Node
	leaves int
}

// BuildTree builds the prefix tree for ft. The result depends only on the
// contents of ft, so the encoder and the decoder obtain identical trees.
//
// Active nodes start as one leaf per present symbol, in symbol order. Each
// round scans them once: the first node of minimum weight becomes the left
// child and the first node of minimum weight among the rest the right
// child. Their parent takes the slot of the left child and the last active
// node moves into the slot of the right child.
//
// A single present symbol yields a root with two leaves for that symbol so
// that its code is one bit long.
func BuildTree(ft *FrequencyTable) (*Tree, error) {
	active := make([]*Node, 0, len(ft))
	for sym, f := range ft {
		if f > 0 {
			active = append(active, &Node{Weight: f, Symbol: byte(sym)})
		}
	}

	switch len(active) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		leaf := active[0]
		dup := &Node{Weight: leaf.Weight, Symbol: leaf.Symbol}
		root := &Node{Weight: leaf.Weight, next: [2]*Node{leaf, dup}}
		return &Tree{root: root, leaves: 2}, nil
	}

	leaves := len(active)
	for len(active) > 1 {
		min1, min2 := -1, -1
		for i, n := range active {
			switch {
			case min1 == -1 || n.Weight < active[min1].Weight:
				min2, min1 = min1, i
			case min2 == -1 || n.Weight < active[min2].Weight:
				min2 = i
			}
		}

		a, b := active[min1], active[min2]
		active[min1] = &Node{Weight: a.Weight + b.Weight, next: [2]*Node{a, b}}
		last := len(active) - 1
		active[min2] = active[last]
		active = active[:last]
	}

	return &Tree{root: active[0], leaves: leaves}, nil
}

func (t *Tree) Root() *Node { return t.root }

// Leaves returns the number of leaves, counting the duplicate leaf of a
// single symbol tree.
func (t *Tree) Leaves() int { return t.leaves }

// Depth returns the length of the longest root to leaf path.
func (t *Tree) Depth() int { return depth(t.root) }

func depth(n *Node) int {
	if n.Leaf() {
		return 0
	}
	return 1 + max(depth(n.next[0]), depth(n.next[1]))
}
