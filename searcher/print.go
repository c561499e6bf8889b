package searcher

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes one line per explored child, "<label>: <mean> <visits>",
// indented with a tab per level. Means are rounded to two decimals.
func (t *Tree) PrintTree(w io.Writer) error {
	return printChildren(w, t.root, 0)
}

func printChildren(w io.Writer, n *node, depth int) error {
	indent := strings.Repeat("\t", depth)
	for _, child := range n.ordered {
		if _, err := fmt.Fprintf(w, "%s%s: %.2f %d\n", indent, child.label, child.mean, child.visits()); err != nil {
			return err
		}
		if err := printChildren(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
