package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejaszewski/runelore/game"
	"github.com/ejaszewski/runelore/searcher/agent"
)

func TestLocalGameRunsToCompletion(t *testing.T) {
	e := Local(
		agent.NewNegamaxAgent(agent.WithDepth(2)),
		agent.NewNegamaxAgent(agent.WithDepth(1)),
	)

	result := e.Run()

	require.True(t, e.Board.Terminal(), "The game should reach the double-pass terminal")
	require.Contains(t, []string{"black", "white", "draw"}, result.Winner)
	require.Equal(t, e.Board.Disks(game.Black), result.Black)
	require.Equal(t, e.Board.Disks(game.White), result.White)
	require.Zero(t, e.Board.Bitboard().Me()&e.Board.Bitboard().Op(),
		"No square may be doubly occupied after a full game")
	require.NotEmpty(t, result.Moves)
	require.LessOrEqual(t, len(result.Moves), MaxMoves)
}

func TestLocalGameRecordsPlies(t *testing.T) {
	e := Local(agent.NewRandomAgent(3), agent.NewRandomAgent(4))

	result := e.Run()

	require.True(t, e.Board.Terminal())
	for i, record := range result.Moves {
		require.Equal(t, i+1, record.Ply, "Plies should be numbered from 1")
	}
	require.Equal(t, game.Black, result.Moves[0].Side, "Black moves first")
}

func TestWinnerMatchesDiskCounts(t *testing.T) {
	e := Local(agent.NewNegamaxAgent(agent.WithDepth(2)), agent.NewRandomAgent(5))

	result := e.Run()

	switch {
	case result.Black > result.White:
		require.Equal(t, "black", result.Winner)
	case result.White > result.Black:
		require.Equal(t, "white", result.Winner)
	default:
		require.Equal(t, "draw", result.Winner)
	}
}
