package searcher

import (
	"ggpa/game"
)

// node is one vertex of the search tree. The parent pointer is a back
// reference used only for backpropagation; children are owned through the
// children map. ordered keeps children in creation order for printing.
type node struct {
	parent   *node
	children map[game.ActionKey]*node
	ordered  []*node
	key      game.ActionKey
	label    string
	depth    int
	results  []float64
	sum      float64
	mean     float64
}

func newRoot() *node {
	return &node{children: make(map[game.ActionKey]*node)}
}

// addChild creates the child for action. It must not already exist.
func (n *node) addChild(action game.Action) *node {
	child := &node{
		parent:   n,
		children: make(map[game.ActionKey]*node),
		key:      action.Key(),
		label:    action.String(),
		depth:    n.depth + 1,
	}
	n.children[child.key] = child
	n.ordered = append(n.ordered, child)
	return child
}

func (n *node) visits() int {
	return len(n.results)
}

func (n *node) record(value float64) {
	n.results = append(n.results, value)
	n.sum += value
	n.mean = n.sum / float64(len(n.results))
}

// backpropagate records value at n and every ancestor up to the root.
func (n *node) backpropagate(value float64) {
	for node := n; node != nil; node = node.parent {
		node.record(value)
	}
}
