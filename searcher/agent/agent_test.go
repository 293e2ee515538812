package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejaszewski/runelore/game"
)

func TestNegamaxAgent(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a := NewNegamaxAgent()

		require.Equal(t, uint8(DefaultDepth), a.Depth())
	})

	t.Run("with depth option", func(t *testing.T) {
		a := NewNegamaxAgent(WithDepth(3))

		require.Equal(t, uint8(3), a.Depth())
	})

	t.Run("finds the opening move", func(t *testing.T) {
		a := NewNegamaxAgent(WithDepth(1))

		move, ok := a.FindMove(game.NewBoard())

		require.True(t, ok)
		require.Equal(t, game.Play(19), move)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		a := NewRandomAgent(1)
		b := game.NewBoard()

		move, ok := a.FindMove(b)

		require.True(t, ok)
		require.Contains(t, b.LegalMoves(), move)
	})

	t.Run("reports a finished game", func(t *testing.T) {
		b := game.NewBoard()
		for !b.Terminal() {
			require.NoError(t, b.Play(b.LegalMoves()[0]))
		}

		_, ok := NewRandomAgent(1).FindMove(b)

		require.False(t, ok)
	})

	t.Run("is reproducible for a seed", func(t *testing.T) {
		first, ok := NewRandomAgent(42).FindMove(game.NewBoard())
		require.True(t, ok)

		second, ok := NewRandomAgent(42).FindMove(game.NewBoard())
		require.True(t, ok)
		require.Equal(t, first, second)
	})
}
