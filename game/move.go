package game

import "fmt"

// Move is a single Othello move: either a disk placed on a square
// (0..63, row major) or a pass. The zero value is a placement on
// square 0; use Pass() for a pass.
type Move struct {
	square uint8
	pass   bool
}

// Play returns a placement move on the given square.
func Play(square uint8) Move {
	return Move{square: square}
}

// Pass returns the pass move.
func Pass() Move {
	return Move{pass: true}
}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool {
	return m.pass
}

// Square returns the square index of a placement move. Meaningless for
// a pass.
func (m Move) Square() uint8 {
	return m.square
}

// Mask returns the single-bit mask of a placement move, suitable for
// Bitboard.MakeMove. Zero for a pass.
func (m Move) Mask() uint64 {
	if m.pass {
		return 0
	}
	return 1 << m.square
}

// String renders the move in algebraic coordinates ("d3"), or "pass".
func (m Move) String() string {
	if m.pass {
		return "pass"
	}
	return fmt.Sprintf("%c%c", 'a'+m.square%8, '1'+m.square/8)
}
