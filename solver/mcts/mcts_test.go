package mcts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/game/nim"
	"github.com/ClaytonKnittel/abstract-game/score"
)

func TestBestMove(t *testing.T) {
	t.Run("immediate win", func(t *testing.T) {
		m := New[*nim.Nim, uint32](WithSeed(1))
		s, mv, ok := m.BestMove(nim.New(2), 10)
		require.True(t, ok)
		require.Equal(t, score.Win(1), s)
		require.Equal(t, uint32(2), mv)
	})

	t.Run("finds the winning move", func(t *testing.T) {
		for _, goroutines := range []int{1, 4} {
			m := New[*nim.Nim, uint32](WithSeed(2), WithEpisodes(3000), WithGoroutines(goroutines))
			for sticks, want := range map[uint32]uint32{4: 1, 5: 2} {
				s, mv, ok := m.BestMove(nim.New(sticks), 20)
				require.True(t, ok)
				require.True(t, s.HasNoInfo(), "nothing beyond immediate wins is proven")
				require.Equal(t, want, mv, "%d sticks with %d goroutines", sticks, goroutines)
			}
		}
	})

	t.Run("time budget", func(t *testing.T) {
		m := New[*nim.Nim, uint32](WithDuration(20*time.Millisecond), WithGoroutines(2), WithMetrics())
		_, _, ok := m.BestMove(nim.New(10), 20)
		require.True(t, ok)
		require.Positive(t, m.LastMetric().Nodes)
		require.GreaterOrEqual(t, m.LastMetric().Duration, 20*time.Millisecond)
	})

	t.Run("finished games have no move", func(t *testing.T) {
		m := New[*nim.Nim, uint32]()
		_, _, ok := m.BestMove(nim.New(0), 10)
		require.False(t, ok)
	})

	t.Run("episodes are counted", func(t *testing.T) {
		m := New[*nim.Nim, uint32](WithEpisodes(50), WithMetrics(), WithSeed(3))
		m.BestMove(nim.New(10), 20)
		require.Equal(t, 50, m.LastMetric().Nodes)
	})
}

func TestTree(t *testing.T) {
	g := nim.New(3)
	root := newNode[*nim.Nim, uint32](nil, g, game.Player2)
	r := rand.New(rand.NewSource(4))

	for i := 0; i < 2; i++ {
		simulate(root, g, 10, r)
	}
	require.Len(t, root.children, 2, "every move is expanded before any is revisited")
	require.Equal(t, 2, root.value())
	require.Equal(t, uint32(3), g.Sticks(), "simulations do not modify the game")

	for i := 0; i < 200; i++ {
		simulate(root, g, 10, r)
	}
	visits := 0
	for _, child := range root.children {
		visits += child.value()
	}
	require.Equal(t, root.value(), visits, "virtual losses are reversed on backup")
}

func TestReward(t *testing.T) {
	require.Equal(t, Win, reward(game.WinFor(game.Player1), game.Player1))
	require.Equal(t, Loss, reward(game.WinFor(game.Player1), game.Player2))
	require.Equal(t, Draw, reward(game.Tied(), game.Player1))
	require.Equal(t, Draw, reward(game.Unfinished(), game.Player2))
}
