// Package mcts is a parallel Monte Carlo tree search using UCT selection and
// random playouts. It plays reasonably on games too large to solve, but never
// proves anything beyond immediate wins.
package mcts

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

type Option func(o *options)

type options struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64
	metrics    bool
}

func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithEpisodes runs a fixed number of simulations per search.
func WithEpisodes(episodes int) Option {
	return func(o *options) {
		if episodes > 0 {
			o.episodes = episodes
			o.duration = 0
		}
	}
}

// WithDuration runs simulations until the time budget is spent.
func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
			o.episodes = 0
		}
	}
}

// WithSeed fixes the random playouts. Searches are only reproducible with a
// single goroutine and an episode budget.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

type MCTS[G game.Game[G, M], M comparable] struct {
	options
	metrics solver.Collector
	last    solver.SearchMetric
}

func New[G game.Game[G, M], M comparable](opts ...Option) *MCTS[G, M] {
	o := options{goroutines: 1, episodes: 1000, seed: uint64(time.Now().UnixNano())}
	for _, opt := range opts {
		opt(&o)
	}
	m := &MCTS[G, M]{options: o, metrics: solver.NewDummyCollector()}
	if o.metrics {
		m.metrics = solver.NewCollector()
	}
	return m
}

func (m *MCTS[G, M]) LastMetric() solver.SearchMetric {
	return m.last
}

// BestMove simulates games from g, cutting playouts off after depth moves. The
// score only reports a win when one is available on the spot.
func (m *MCTS[G, M]) BestMove(g G, depth uint32) (score.Score, M, bool) {
	var none M
	if res := g.Finished(); res.IsFinished() {
		if res.Outcome == game.Tie {
			return score.GuaranteedTie(), none, false
		}
		return score.NoInfo(), none, false
	}
	if mv, ok := game.SearchImmediateWin[G, M](g); ok {
		return score.Win(1), mv, true
	}

	m.metrics.Start(m.goroutines, depth)
	root := newNode[G, M](nil, g, g.CurrentPlayer().Opposite())
	if m.episodes > 0 {
		m.iterate(root, g, depth)
	} else {
		m.countdown(root, g, depth)
	}
	m.last = m.metrics.Complete()

	mv, ok := root.bestMove()
	log.Debug().
		Int("visits", root.value()).
		Interface("move", mv).
		Msg("mcts search complete")
	return score.NoInfo(), mv, ok
}

func (m *MCTS[G, M]) rng(worker int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + uint64(worker)))
}

func (m *MCTS[G, M]) iterate(root *node[G, M], state G, cutoff uint32) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(r *rand.Rand) {
			defer wg.Done()

			for range task {
				simulate(root, state, cutoff, r)
				m.metrics.AddNode()
			}
		}(m.rng(i))
	}

	wg.Wait()
}

func (m *MCTS[G, M]) countdown(root *node[G, M], state G, cutoff uint32) {
	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(r *rand.Rand) {
			defer wg.Done()

			for time.Since(start) < m.duration {
				simulate(root, state, cutoff, r)
				m.metrics.AddNode()
			}
		}(m.rng(i))
	}

	wg.Wait()
}

func simulate[G game.Game[G, M], M comparable](root *node[G, M], state G, cutoff uint32, r *rand.Rand) {
	leaf, leafState := selectThenExpand(root, state)
	res := rollout(leafState, cutoff, r)
	backup(leaf, res)
}

func backup[G game.Game[G, M], M comparable](leaf *node[G, M], res game.Result) {
	n := leaf
	for n != nil {
		n = n.backup(res)
	}
}

func selectThenExpand[G game.Game[G, M], M comparable](root *node[G, M], state G) (*node[G, M], G) {
	parent := root
	child, state, added := parent.selectOrExpand(state)
	for child != parent && !added {
		parent = child
		child, state, added = parent.selectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game ends or cutoff moves were made.
func rollout[G game.Game[G, M], M comparable](state G, cutoff uint32, r *rand.Rand) game.Result {
	state = state.Clone()
	for depth := uint32(0); depth < cutoff; depth++ {
		if res := state.Finished(); res.IsFinished() {
			return res
		}
		var moves []M
		for mv := range game.Moves[G, M](state) {
			moves = append(moves, mv)
		}
		if len(moves) == 0 {
			break
		}
		state.MakeMove(moves[r.Intn(len(moves))]) // Random rollout policy
	}
	return state.Finished()
}
