// Package engine runs complete games between agents.
package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ejaszewski/runelore/game"
	"github.com/ejaszewski/runelore/searcher/agent"
)

// MaxMoves caps a game well above the longest possible Othello line, as
// a guard against a misbehaving agent ping-ponging the engine.
const MaxMoves = 200

// MoveRecord describes one ply of a finished game.
type MoveRecord struct {
	Ply     int
	Side    game.Side
	Move    game.Move
	Elapsed time.Duration
}

// Result summarizes a finished game.
type Result struct {
	Winner string // "black", "white" or "draw"
	Black  int    // final disk counts
	White  int
	Moves  []MoveRecord
}

// Engine drives a local game between two agents on a shared board.
type Engine struct {
	Board *game.Board
	Black agent.Agent
	White agent.Agent
}

// Local returns an engine for a fresh game between the two agents.
func Local(black, white agent.Agent) *Engine {
	return &Engine{
		Board: game.NewBoard(),
		Black: black,
		White: white,
	}
}

// Run plays the game until the double-pass terminal and returns the
// result. An agent returning no move, or an illegal move, forfeits by
// ending the game early.
func (e *Engine) Run() Result {
	log.Info().Stringer("side", game.Black).Msg("game starting")

	var records []MoveRecord
	for ply := 1; !e.Board.Terminal() && ply <= MaxMoves; ply++ {
		side := e.Board.State().Side()
		current := e.Black
		if side == game.White {
			current = e.White
		}

		start := time.Now()
		move, ok := current.FindMove(e.Board)
		elapsed := time.Since(start)
		if !ok {
			log.Warn().Stringer("side", side).Msg("agent resigned with no move")
			break
		}

		if err := e.Board.Play(move); err != nil {
			log.Error().Err(err).Stringer("side", side).Stringer("move", move).
				Msg("agent played an illegal move")
			break
		}

		records = append(records, MoveRecord{Ply: ply, Side: side, Move: move, Elapsed: elapsed})
		log.Debug().Int("ply", ply).Stringer("side", side).Stringer("move", move).
			Dur("elapsed", elapsed).Msg("move played")
	}

	black := e.Board.Disks(game.Black)
	white := e.Board.Disks(game.White)
	winner := "draw"
	if black > white {
		winner = game.Black.String()
	} else if white > black {
		winner = game.White.String()
	}

	log.Info().Int("black", black).Int("white", white).Str("winner", winner).
		Msg("game over")

	return Result{Winner: winner, Black: black, White: white, Moves: records}
}
