package searcher

import (
	"math"

	"ggpa/experiments/metrics"
	"ggpa/game"

	"golang.org/x/exp/rand"
)

// Tree is the search tree for a single decision. Its configuration is fixed at
// construction and shared by every node.
type Tree struct {
	root        *node
	exploration float64
	score       ScoreFn
	rng         *rand.Rand
	metrics     metrics.Collector
}

func NewTree(exploration float64, score ScoreFn, rng *rand.Rand, collector metrics.Collector) *Tree {
	if score == nil {
		score = BlendedScore
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Tree{
		root:        newRoot(),
		exploration: exploration,
		score:       score,
		rng:         rng,
		metrics:     collector,
	}
}

// Step runs one select, expand, rollout and backpropagate iteration from the
// root. Each level works on its own resample of the state it reaches.
func (t *Tree) Step(state game.State) {
	n := t.root
	for {
		if state.Ended() {
			n.backpropagate(t.score(state))
			return
		}

		sample := state.Resample(t.rng)
		actions := sample.Actions()
		if len(actions) == 0 { // No way forward, score where we stand
			n.backpropagate(t.score(sample))
			return
		}

		unexplored := []game.Action{}
		for _, action := range actions {
			if _, ok := n.children[action.Key()]; !ok {
				unexplored = append(unexplored, action)
			}
		}
		if len(unexplored) > 0 {
			t.expand(n, sample, unexplored)
			return
		}

		action, child := t.pickChild(n, actions)
		sample.Step(action)
		n, state = child, sample
	}
}

// pickChild returns the action and child with the highest UCB score. Every
// action must already have a child; ties go to the earliest action.
func (t *Tree) pickChild(n *node, actions []game.Action) (game.Action, *node) {
	var maxAction game.Action
	var maxChild *node
	maxScore := math.Inf(-1)
	for _, action := range actions {
		child := n.children[action.Key()]
		score := ucb(child.mean, n.visits(), child.visits(), t.exploration)
		if score > maxScore {
			maxScore = score
			maxAction = action
			maxChild = child
		}
	}
	return maxAction, maxChild
}

// expand adds a child for one randomly chosen unexplored action and rolls out
// from it.
func (t *Tree) expand(n *node, state game.State, unexplored []game.Action) {
	action := unexplored[t.rng.Intn(len(unexplored))]
	child := n.addChild(action)
	t.metrics.AddNode(child.depth)

	state.Step(action)
	t.rollout(child, state)
}

// rollout plays uniformly random actions until the state ends, then
// backpropagates from leaf. No nodes are created along the way.
func (t *Tree) rollout(leaf *node, state game.State) {
	for !state.Ended() {
		actions := state.Actions()
		if len(actions) == 0 {
			break
		}
		state.Step(actions[t.rng.Intn(len(actions))])
	}
	t.metrics.AddRollout()
	leaf.backpropagate(t.score(state))
}

// Best returns the legal action of state whose child has the highest mean
// score, without any exploration bonus. When no legal action has been explored
// it falls back to a uniformly random legal action and reports found=false.
func (t *Tree) Best(state game.State) (action game.Action, found bool) {
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, false
	}

	maxMean := math.Inf(-1)
	for _, a := range actions {
		child, ok := t.root.children[a.Key()]
		if !ok {
			continue
		}
		if child.mean > maxMean {
			maxMean = child.mean
			action = a
		}
	}
	if action != nil {
		return action, true
	}
	return actions[t.rng.Intn(len(actions))], false
}

// Size is the number of nodes below the root.
func (t *Tree) Size() int {
	size := 0
	stack := append([]*node(nil), t.root.ordered...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = append(stack[:len(stack)-1], n.ordered...)
		size++
	}
	return size
}
