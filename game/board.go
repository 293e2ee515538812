package game

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidMove is returned by Board.Play for a move that is not legal
// in the current position.
var ErrInvalidMove = errors.New("invalid move played")

// extractLSB isolates the lowest set bit of a mask.
func extractLSB(x uint64) uint64 {
	return x & -x
}

// Board is a high-level Othello board: a Bitboard paired with the
// GameState that tracks the side to move, with move validation on top.
// The search operates on the two halves directly; Board is the surface
// for drivers, servers and humans.
type Board struct {
	bitboard Bitboard
	state    GameState
}

// NewBoard returns a board at the Othello starting position, Black to
// move.
func NewBoard() *Board {
	return &Board{
		bitboard: NewBitboard(),
		state:    NewGameState(),
	}
}

// LegalMoves returns every legal move in ascending square order. A
// position always yields at least one move: a pass is synthesized when
// no placement is legal.
func (b *Board) LegalMoves() []Move {
	mask := b.bitboard.Moves()
	moves := make([]Move, 0, max(bits.OnesCount64(mask), 1))
	for mask != 0 {
		moveMask := extractLSB(mask)
		mask &^= moveMask
		moves = append(moves, Play(uint8(bits.TrailingZeros64(moveMask))))
	}
	if len(moves) == 0 {
		moves = append(moves, Pass())
	}
	return moves
}

// Play applies the move, advancing both the bitboard and the game
// state. It returns ErrInvalidMove if the move is not legal here: a
// placement outside the legal-move mask, or a pass while a placement
// exists. The board is unchanged on error.
func (b *Board) Play(m Move) error {
	valid := b.bitboard.Moves()
	if !m.IsPass() {
		moveMask := m.Mask()
		if valid&moveMask == 0 {
			return ErrInvalidMove
		}
		b.bitboard = b.bitboard.MakeMove(moveMask)
		b.state = b.state.Play()
		return nil
	}
	if valid != 0 {
		return ErrInvalidMove
	}
	b.bitboard = b.bitboard.Pass()
	b.state = b.state.Pass()
	return nil
}

// Bitboard returns the underlying bitboard, relative to the side to
// move.
func (b *Board) Bitboard() Bitboard {
	return b.bitboard
}

// State returns the game state.
func (b *Board) State() GameState {
	return b.state
}

// Terminal reports whether the game is over: the side to move has no
// placement and the previous ply was already a pass.
func (b *Board) Terminal() bool {
	return b.bitboard.Moves() == 0 && b.state.Last() == Passed
}

// Disks returns the number of disks the given side has on the board.
func (b *Board) Disks(s Side) int {
	if s == b.state.Side() {
		return bits.OnesCount64(b.bitboard.Me())
	}
	return bits.OnesCount64(b.bitboard.Op())
}

// String renders the board as an 8x8 grid with black as X and white as
// O, disk counts, and an arrow marking the side to move.
func (b *Board) String() string {
	var black, white uint64
	if b.state.Side() == Black {
		black, white = b.bitboard.Me(), b.bitboard.Op()
	} else {
		black, white = b.bitboard.Op(), b.bitboard.Me()
	}
	numBlack := bits.OnesCount64(black)
	numWhite := bits.OnesCount64(white)

	var sb strings.Builder
	for idx := 0; idx < 64; idx++ {
		if idx%8 == 0 {
			fmt.Fprintf(&sb, "%d ", idx/8+1)
		}
		switch {
		case black&1 == 1:
			sb.WriteString("X ")
		case white&1 == 1:
			sb.WriteString("O ")
		default:
			sb.WriteString(". ")
		}
		if idx%8 == 7 {
			switch idx / 8 {
			case 3:
				fmt.Fprintf(&sb, "B: %2d", numBlack)
				if b.state.Side() == Black {
					sb.WriteString(" <-")
				}
			case 4:
				fmt.Fprintf(&sb, "W: %2d", numWhite)
				if b.state.Side() == White {
					sb.WriteString(" <-")
				}
			}
			sb.WriteByte('\n')
		}
		black >>= 1
		white >>= 1
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
