package huffman

import (
	"fmt"
	"io"
	"strings"
)

const padding = "    "

// Fprint draws the tree sideways, left branches above their parent and
// right branches below it.
func (t *Tree) Fprint(w io.Writer) error {
	p := treePrinter{w: w}
	p.node(t.root, 1, 0)
	return p.err
}

type treePrinter struct {
	w   io.Writer
	err error
}

func (p *treePrinter) printf(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat(padding, depth)+format, args...)
}

func (p *treePrinter) node(n *Node, depth int, isAbove int) {
	if l := n.next[0]; l.Leaf() {
		p.printf(depth, "/--%q\n", l.Symbol)
	} else {
		p.node(l, depth+1, 1)
	}

	switch isAbove {
	case 1:
		p.printf(depth-1, "/--<\n")
	case 0:
		p.printf(depth-1, "---<\n")
	default:
		p.printf(depth-1, "\\--<\n")
	}

	if r := n.next[1]; r.Leaf() {
		p.printf(depth, "\\--%q\n", r.Symbol)
	} else {
		p.node(r, depth+1, -1)
	}
}
