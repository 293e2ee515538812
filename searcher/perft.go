package searcher

import "github.com/ejaszewski/runelore/game"

// Perft counts the positions reachable from the standard opening in
// exactly depth plies. A forced pass consumes a ply; a double pass is a
// leaf. The results match the published Othello perft sequence
// (4, 12, 56, 244, 1396, ...), which makes this the regression anchor
// for move generation.
func Perft(depth uint8) uint64 {
	return perft(game.NewBitboard(), false, depth)
}

func perft(bitboard game.Bitboard, passed bool, depth uint8) uint64 {
	if depth == 0 {
		return 1
	}

	moves := bitboard.Moves()

	if moves == 0 {
		if passed {
			return 1
		}
		return perft(bitboard.Pass(), true, depth-1)
	}

	var nodes uint64
	for moves != 0 {
		moveMask := moves & -moves
		moves &^= moveMask
		nodes += perft(bitboard.MakeMove(moveMask), false, depth-1)
	}

	return nodes
}
