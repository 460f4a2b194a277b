// Package negamax is an exhaustive, depth-limited solver for any hashable
// game. It is exact and slow, which makes it the reference that faster solvers
// are checked against.
package negamax

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

// Position is a game whose states can key a transposition table.
type Position[G any, M comparable] interface {
	game.Game[G, M]
	game.Hasher
}

type Option func(o *options)

type options struct {
	table      bool
	goroutines int
	metrics    bool
}

// WithTable caches scores by position, both within and across BestMove calls.
// Positions that repeat along a line of play are only detectable with a table.
func WithTable() Option {
	return func(o *options) {
		o.table = true
	}
}

// WithGoroutines searches the moves of the root position concurrently.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// Negamax is not safe for concurrent use; WithGoroutines parallelizes a single
// BestMove call.
type Negamax[G Position[G, M], M comparable] struct {
	goroutines int
	table      table
	metrics    solver.Collector
	last       solver.SearchMetric
}

func New[G Position[G, M], M comparable](opts ...Option) *Negamax[G, M] {
	o := options{goroutines: 1}
	for _, opt := range opts {
		opt(&o)
	}
	n := &Negamax[G, M]{
		goroutines: o.goroutines,
		metrics:    solver.NewDummyCollector(),
	}
	if o.table {
		n.table = table{}
	}
	if o.metrics {
		n.metrics = solver.NewCollector()
	}
	return n
}

// Complete marks Negamax as a complete solver: it explores every line up to
// the requested depth.
func (n *Negamax[G, M]) Complete() {}

// LastMetric returns the statistics of the latest BestMove call. It is empty
// unless WithMetrics was given.
func (n *Negamax[G, M]) LastMetric() solver.SearchMetric {
	return n.last
}

// TableSize is the number of positions currently cached.
func (n *Negamax[G, M]) TableSize() int {
	return len(n.table)
}

func (n *Negamax[G, M]) BestMove(g G, depth uint32) (score.Score, M, bool) {
	var none M
	if res := g.Finished(); res.IsFinished() {
		if res.Outcome == game.Tie {
			return score.GuaranteedTie(), none, false
		}
		return score.NoInfo(), none, false
	}

	depth = min(depth, score.MaxWinDepth)
	n.metrics.Start(n.goroutines, depth)
	defer func() {
		n.last = n.metrics.Complete()
	}()

	if depth == 0 {
		for m := range game.Moves[G, M](g) {
			return score.NoInfo(), m, true
		}
		return score.NoInfo(), none, false
	}

	var (
		s  score.Score
		m  M
		ok bool
	)
	if n.goroutines > 1 {
		s, m, ok = n.searchParallel(g, depth)
	} else {
		sr := &search[G, M]{table: n.table, metrics: n.metrics}
		s, m, ok = sr.root(g, depth)
	}

	log.Debug().
		Uint32("depth", depth).
		Stringer("score", s).
		Bool("found", ok).
		Interface("move", m).
		Msg("negamax search complete")
	return s, m, ok
}

// searchParallel solves each root move in its own goroutine. The shared table
// is read-only while they run; every goroutine writes to a private table of
// the positions it searched, and those are folded into the shared one
// afterwards.
func (n *Negamax[G, M]) searchParallel(g G, depth uint32) (score.Score, M, bool) {
	n.metrics.AddNode()
	moves := make([]M, 0)
	for m := range game.Moves[G, M](g) {
		moves = append(moves, m)
	}
	scores := make([]score.Score, len(moves))
	visited := make([]bool, len(moves))
	deltas := make([]table, len(moves))

	var eg errgroup.Group
	eg.SetLimit(n.goroutines)
	for i, m := range moves {
		eg.Go(func() error {
			sr := &search[G, M]{metrics: n.metrics}
			if n.table != nil {
				sr.base = n.table
				sr.table = table{}
				sr.table.begin(g.Hash())
				deltas[i] = sr.table
			}
			scores[i], visited[i] = sr.child(g, m, depth)
			return nil
		})
	}
	// Workers never fail.
	_ = eg.Wait()

	f := newFrontier[M]()
	for i, m := range moves {
		if !visited[i] {
			f.skip()
			continue
		}
		f.add(scores[i], m)
	}
	s, m, ok := f.result()

	if n.table != nil {
		h := g.Hash()
		prev := n.table[h]
		for _, t := range deltas {
			delete(t, h)
			n.table.absorb(t)
		}
		n.table.record(h, prev, s)
	}
	return s, m, ok
}

type search[G Position[G, M], M comparable] struct {
	table table
	// base is consulted for positions missing from table and never written.
	base    table
	metrics solver.Collector
}

func (sr *search[G, M]) memo(h game.StateHash) score.Memo {
	if memo, ok := sr.table[h]; ok {
		return memo
	}
	return sr.base[h]
}

func (sr *search[G, M]) root(g G, depth uint32) (score.Score, M, bool) {
	if sr.table == nil {
		return sr.solve(g, depth)
	}
	h := g.Hash()
	prev := sr.table[h]
	sr.table.begin(h)
	s, m, ok := sr.solve(g, depth)
	sr.table.record(h, prev, s)
	return s, m, ok
}

// solve scores an unfinished position from its current player's perspective.
// depth is at least 1.
func (sr *search[G, M]) solve(g G, depth uint32) (score.Score, M, bool) {
	sr.metrics.AddNode()
	f := newFrontier[M]()
	for m := range game.Moves[G, M](g) {
		s, ok := sr.child(g, m, depth)
		if !ok {
			f.skip()
			continue
		}
		f.add(s, m)
		if s.IsWin() && s.TurnCountWin() == 1 {
			break
		}
	}
	return f.result()
}

// child scores playing m in g, as seen from g. It is false if the resulting
// position is already being searched further up the line.
func (sr *search[G, M]) child(g G, m M, depth uint32) (score.Score, bool) {
	next := game.WithMove(g, m)
	if res := next.Finished(); res.IsFinished() {
		return solver.FinishedScore(res, g.CurrentPlayer()), true
	}
	s, ok := sr.lookup(next, depth-1)
	if !ok {
		return score.NoInfo(), false
	}
	return s.Backstep(), true
}

func (sr *search[G, M]) lookup(g G, depth uint32) (score.Score, bool) {
	if depth == 0 {
		return score.NoInfo(), true
	}
	if sr.table == nil {
		s, _, _ := sr.solve(g, depth)
		return s, true
	}

	h := g.Hash()
	memo := sr.memo(h)
	switch memo.State() {
	case score.InProgress:
		return score.NoInfo(), false
	case score.Known:
		if known, _ := memo.Score(); known.Determined(depth) {
			sr.metrics.AddTableHit()
			return clip(known, depth), true
		}
	}

	sr.table.begin(h)
	s, _, _ := sr.solve(g, depth)
	sr.table.record(h, memo, s)
	return s, true
}

// clip drops what s knows beyond depth, so that a cached score reads the same
// as a fresh search to depth would.
func clip(s score.Score, depth uint32) score.Score {
	if s.IsGuaranteedTie() {
		return s
	}
	if win := s.TurnCountWin(); win != 0 && win <= depth {
		return s
	}
	return score.Tie(min(s.TurnCountTie(), depth))
}
