// Package searcher implements fixed-depth game-tree search over the
// low-level Othello board representation.
package searcher

import (
	"math"

	"github.com/ejaszewski/runelore/game"
)

// Negamax searches the position to the given fixed depth and returns
// the best move with its score, a material differential from the point
// of view of the side to move. The third result is false when there is
// nothing to report: a zero depth, or a root position that is already
// over (no legal placement and the previous ply was a pass).
//
// The root examines every candidate without pruning, so the returned
// move is exact; ties keep the earliest move in square order.
func Negamax(board *game.Board, depth uint8) (game.Move, int32, bool) {
	if depth == 0 {
		return game.Move{}, 0, false
	}

	moves := board.LegalMoves()
	bitboard := board.Bitboard()
	state := board.State()

	bestMove := moves[0]
	bestScore := int32(math.MinInt32)

	for _, m := range moves {
		var score int32
		if m.IsPass() {
			if state.Last() == game.Passed {
				return game.Move{}, 0, false
			}
			score = -negamax(bitboard.Pass(), state.Pass(), math.MinInt32+1, math.MaxInt32, depth-1)
		} else {
			score = -negamax(bitboard.MakeMove(m.Mask()), state.Play(), math.MinInt32+1, math.MaxInt32, depth-1)
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	return bestMove, bestScore, true
}

// negamax evaluates a node with fail-hard alpha-beta pruning: a beta
// cutoff returns the bound itself, not the child's score. Board and
// state are values, so every recursive call owns its own copies.
func negamax(bitboard game.Bitboard, state game.GameState, alpha, beta int32, depth uint8) int32 {
	if depth == 0 {
		return bitboard.Score()
	}

	moves := bitboard.Moves()

	if moves == 0 {
		// Two passes in a row end the game; one forces a pass that
		// still consumes a ply.
		if state.Last() == game.Passed {
			return bitboard.Score()
		}
		return -negamax(bitboard.Pass(), state.Pass(), -beta, -alpha, depth-1)
	}

	for moves != 0 {
		moveMask := moves & -moves
		moves &^= moveMask
		score := -negamax(bitboard.MakeMove(moveMask), state.Play(), -beta, -alpha, depth-1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
