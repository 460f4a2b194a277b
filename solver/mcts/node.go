package mcts

import (
	"math"
	"slices"
	"sync"

	"github.com/ClaytonKnittel/abstract-game/game"
)

// node is a position in the search tree. Rewards are from the perspective of
// mover, the player whose move led here, so a parent picks the child that is
// best for itself.
type node[G game.Game[G, M], M comparable] struct {
	sync.Mutex
	parent   *node[G, M]
	mover    game.Player
	moves    []M
	children []*node[G, M]
	rewards  float64
	visits   int
}

func newNode[G game.Game[G, M], M comparable](parent *node[G, M], state G, mover game.Player) *node[G, M] {
	var moves []M
	if !state.Finished().IsFinished() {
		moves = slices.Collect(game.Moves[G, M](state))
	}
	return &node[G, M]{
		parent:   parent,
		mover:    mover,
		moves:    moves,
		children: make([]*node[G, M], 0, len(moves)),
	}
}

// selectOrExpand descends one level, adding a child if this node still has
// unexplored moves. It returns the node itself for terminal positions.
func (n *node[G, M]) selectOrExpand(state G) (*node[G, M], G, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, state, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		next := game.WithMove(state, n.moves[len(n.children)])
		child := newNode(n, next, state.CurrentPlayer())
		n.children = append(n.children, child)
		child.applyLoss()
		return child, next, true
	}

	// Fully expanded node
	i := n.pickChild()
	child := n.children[i]
	child.applyLoss()
	return child, game.WithMove(state, n.moves[i]), false
}

func (n *node[G, M]) pickChild() int {
	// The root carries no virtual loss, so other workers may have expanded all
	// of its children before any backup reached it.
	normalizer := CSquared * math.Log(float64(max(n.visits, 1)))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss is a virtual loss, steering concurrent workers away from the path
// until backup reverses it.
func (n *node[G, M]) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node[G, M]) score(normalizer float64) float64 {
	n.Lock()
	defer n.Unlock()

	return ucb1(n.rewards, n.visits, normalizer)
}

func (n *node[G, M]) backup(res game.Result) *node[G, M] {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= Loss
		n.visits--
	}

	n.rewards += reward(res, n.mover)
	n.visits++

	return n.parent
}

func (n *node[G, M]) value() int {
	n.Lock()
	defer n.Unlock()

	return n.visits
}

// bestMove is the most visited move.
func (n *node[G, M]) bestMove() (M, bool) {
	n.Lock()
	defer n.Unlock()

	var best M
	if len(n.children) == 0 {
		return best, false
	}
	maxValue := -1
	for i, child := range n.children {
		if v := child.value(); v > maxValue {
			maxValue = v
			best = n.moves[i]
		}
	}
	return best, true
}
