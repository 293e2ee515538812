package game

import (
	"math/bits"
	"strings"
)

// Mask of all squares not on the a-file.
const notAFile uint64 = 0xfefefefefefefefe

// Mask of all squares not on the h-file.
const notHFile uint64 = 0x7f7f7f7f7f7f7f7f

// Mask of a fully occupied board.
const full uint64 = 0xffffffffffffffff

// The four lane offsets cover horizontal (1), diagonal (7, 9) and
// vertical (8) rays; running them in both shift senses covers all
// eight board directions.
var laneShifts = [4]uint{1, 7, 8, 9}

// Edge masks per lane, preventing shifts from wrapping across the board
// edge. The vertical lane needs no mask: shifting by 8 falls off the
// board instead of wrapping.
var (
	laneMasksDown = [4]uint64{notHFile, notAFile, full, notHFile}
	laneMasksUp   = [4]uint64{notAFile, notHFile, full, notAFile}
)

// lanes holds one intermediate value per direction lane. The original
// engine kept these in a 4-wide SIMD register; four independent scalar
// words compute the same results.
type lanes [4]uint64

func splat(x uint64) lanes {
	return lanes{x, x, x, x}
}

func (l lanes) reduce() uint64 {
	return l[0] | l[1] | l[2] | l[3]
}

// fillDown is a Kogge-Stone flood fill toward lower bit indices: starting
// from the generator bits, it propagates through contiguous propagator
// bits in all four lanes at once. Three doubling rounds (steps 1x, 2x, 4x
// the lane offset) saturate an 8x8 board. The result includes the
// generator bits themselves.
func fillDown(generator, propagator lanes) lanes {
	var out lanes
	for i := range out {
		s := laneShifts[i]
		pro := propagator[i] & laneMasksDown[i]
		gen := generator[i]
		gen |= pro & (gen >> s)
		pro &= pro >> s
		gen |= pro & (gen >> (s * 2))
		pro &= pro >> (s * 2)
		out[i] = gen | (pro & (gen >> (s * 4)))
	}
	return out
}

// fillUp is fillDown toward higher bit indices.
func fillUp(generator, propagator lanes) lanes {
	var out lanes
	for i := range out {
		s := laneShifts[i]
		pro := propagator[i] & laneMasksUp[i]
		gen := generator[i]
		gen |= pro & (gen << s)
		pro &= pro << s
		gen |= pro & (gen << (s * 2))
		pro &= pro << (s * 2)
		out[i] = gen | (pro & (gen << (s * 4)))
	}
	return out
}

// shiftDown steps each lane once toward lower bit indices, without
// accumulation. Used to step past the far end of a fill.
func shiftDown(gen lanes) lanes {
	var out lanes
	for i := range out {
		out[i] = (gen[i] >> laneShifts[i]) & laneMasksDown[i]
	}
	return out
}

// shiftUp steps each lane once toward higher bit indices.
func shiftUp(gen lanes) lanes {
	var out lanes
	for i := range out {
		out[i] = (gen[i] << laneShifts[i]) & laneMasksUp[i]
	}
	return out
}

// Bitboard is a low-level Othello board: two occupancy masks, one bit
// per square (0..63, row major), always relative to the side to move.
// It is an immutable value; MakeMove and Pass return fresh boards and
// never mutate in place.
type Bitboard struct {
	me uint64
	op uint64
}

// NewBitboard returns the standard Othello opening position.
func NewBitboard() Bitboard {
	return Bitboard{
		me: 0x0000000810000000,
		op: 0x0000001008000000,
	}
}

// Empties returns the mask of unoccupied squares.
func (b Bitboard) Empties() uint64 {
	return ^(b.me | b.op)
}

// Moves returns the mask of all legal moves for the side to move. The
// mask may be zero, in which case the side must pass.
func (b Bitboard) Moves() uint64 {
	me := splat(b.me)
	op := splat(b.op)

	// Runs of opponent disks reachable from our disks, per direction.
	fillD := fillDown(me, op)
	fillU := fillUp(me, op)

	// Keep only the captured-run cells, then step one square further:
	// that lands on the candidate destination beyond each run.
	for i := range fillD {
		fillD[i] &= b.op
		fillU[i] &= b.op
	}
	movesD := shiftDown(fillD).reduce()
	movesU := shiftUp(fillU).reduce()

	// A destination is only legal if it is actually empty.
	return (movesD | movesU) & b.Empties()
}

// MakeMove plays the move given as a single-bit mask and returns the
// resulting board, with perspective swapped to the next side to move.
//
// The move is not validated: the caller must pass a bit drawn from
// Moves() on this exact board. Any other mask yields a deterministic
// but meaningless board.
func (b Bitboard) MakeMove(moveMask uint64) Bitboard {
	op := splat(b.op)
	mv := splat(moveMask)

	// Candidate capture runs extending from the played square.
	fillD := fillDown(mv, op)
	fillU := fillUp(mv, op)

	// A run only flips if the square past its far end holds one of our
	// disks. Select the whole fill for flanked lanes, nothing otherwise.
	shiftD := shiftDown(fillD)
	shiftU := shiftUp(fillU)
	var swaps uint64
	for i := range fillD {
		if shiftD[i]&b.me != 0 {
			swaps |= fillD[i]
		}
		if shiftU[i]&b.me != 0 {
			swaps |= fillU[i]
		}
	}

	// The swap set contains the played square, so the new disk is placed
	// and the captured disks flipped in the same two operations.
	return Bitboard{
		me: b.op &^ swaps,
		op: b.me | swaps,
	}
}

// Pass returns the board with the two masks swapped: the turn passes to
// the other side with no disks altered. The caller must have confirmed
// that Moves() is empty.
func (b Bitboard) Pass() Bitboard {
	return Bitboard{
		me: b.op,
		op: b.me,
	}
}

// Score returns the material differential for the side to move: own
// disks minus opponent disks.
func (b Bitboard) Score() int32 {
	return int32(bits.OnesCount64(b.me)) - int32(bits.OnesCount64(b.op))
}

// Me returns the occupancy mask of the side to move.
func (b Bitboard) Me() uint64 {
	return b.me
}

// Op returns the occupancy mask of the side not to move.
func (b Bitboard) Op() uint64 {
	return b.op
}

// String renders the raw masks as a debug grid: X for the side to move,
// O for the opponent, # for an (illegal) doubly occupied square.
func (b Bitboard) String() string {
	var sb strings.Builder
	me := b.me
	op := b.op
	for idx := 0; idx < 64; idx++ {
		if idx%8 == 0 {
			sb.WriteByte(byte('1' + idx/8))
		}
		switch {
		case me&1 == 1 && op&1 == 1:
			sb.WriteByte('#')
		case me&1 == 1:
			sb.WriteByte('X')
		case op&1 == 1:
			sb.WriteByte('O')
		default:
			sb.WriteByte('.')
		}
		if idx%8 == 7 {
			sb.WriteByte('\n')
		}
		me >>= 1
		op >>= 1
	}
	sb.WriteString(" abcdefgh\n")
	return sb.String()
}
