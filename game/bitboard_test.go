package game

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// slowMoves is a simple, obviously correct move generator for testing:
// it scans all 8 directions from every empty square.
func slowMoves(me, op uint64) uint64 {
	dirs := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	var moves uint64
	for sq := 0; sq < 64; sq++ {
		if (me|op)>>uint(sq)&1 == 1 {
			continue
		}
		for _, d := range dirs {
			r, c := sq/8+d[0], sq%8+d[1]
			seen := false
			for r >= 0 && r < 8 && c >= 0 && c < 8 {
				bit := uint(r*8 + c)
				if op>>bit&1 == 1 {
					seen = true
					r += d[0]
					c += d[1]
					continue
				}
				if me>>bit&1 == 1 && seen {
					moves |= 1 << uint(sq)
				}
				break
			}
		}
	}
	return moves
}

// slowFlips returns the disks flipped by playing sq, by the same scan.
func slowFlips(sq int, me, op uint64) uint64 {
	dirs := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	var flips uint64
	for _, d := range dirs {
		r, c := sq/8+d[0], sq%8+d[1]
		var run uint64
		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			bit := uint(r*8 + c)
			if op>>bit&1 == 1 {
				run |= 1 << bit
				r += d[0]
				c += d[1]
				continue
			}
			if me>>bit&1 == 1 {
				flips |= run
			}
			break
		}
	}
	return flips
}

func TestNewBitboard(t *testing.T) {
	b := NewBitboard()

	require.Zero(t, b.Me()&b.Op(), "No square may be doubly occupied")
	require.Equal(t, uint64(0x0000000810000000), b.Me(), "Side to move should hold e4 and d5")
	require.Equal(t, uint64(0x0000001008000000), b.Op(), "Opponent should hold d4 and e5")
	require.Equal(t, int32(0), b.Score(), "Starting position should be level")
	require.Equal(t, 60, bits.OnesCount64(b.Empties()), "Starting position should have 60 empty squares")
}

func TestMoves(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		moves := NewBitboard().Moves()

		require.Equal(t, 4, bits.OnesCount64(moves), "Starting position should have 4 moves")
		require.Equal(t, uint64(0x0000102004080000), moves, "Moves should be d3, c4, f5 and e6")
	})

	t.Run("no moves without opponent disks", func(t *testing.T) {
		b := Bitboard{me: 0x0000001818000000, op: 0}

		require.Zero(t, b.Moves(), "A move must flank at least one opponent disk")
	})

	t.Run("no moves on a full board", func(t *testing.T) {
		b := Bitboard{me: 0x00000000ffffffff, op: 0xffffffff00000000}

		require.Zero(t, b.Moves(), "A full board has no moves")
	})
}

func TestMakeMove(t *testing.T) {
	b := NewBitboard().MakeMove(1 << 19) // d3

	require.Equal(t, uint64(0x0000001000000000), b.Me(),
		"Opponent should be down to e5 after d3 flips d4")
	require.Equal(t, uint64(0x0000000818080000), b.Op(),
		"Mover should hold d3, d4, e4 and d5 from the new perspective")
	require.Equal(t, int32(-3), b.Score(), "Score should be relative to the new side to move")
	require.Zero(t, b.Me()&b.Op(), "No square may be doubly occupied")
}

func TestPass(t *testing.T) {
	b := NewBitboard().MakeMove(1 << 19)

	p := b.Pass()
	require.Equal(t, b.Op(), p.Me(), "Pass should swap the masks")
	require.Equal(t, b.Me(), p.Op(), "Pass should swap the masks")
	require.Equal(t, b, p.Pass(), "A double pass should be the identity")
	require.Equal(t, -b.Score(), p.Score(), "Pass should negate the score")
}

func TestAgainstSlowReference(t *testing.T) {
	// Play random games and cross-check every position against the
	// scalar reference implementation.
	rng := rand.New(rand.NewSource(1))
	for g := 0; g < 50; g++ {
		b := NewBitboard()
		passed := false
		for {
			require.Zero(t, b.Me()&b.Op(), "No square may be doubly occupied")

			moves := b.Moves()
			require.Equal(t, slowMoves(b.Me(), b.Op()), moves,
				"Move generation should match the slow reference")

			if moves == 0 {
				if passed {
					break
				}
				b = b.Pass()
				passed = true
				continue
			}
			passed = false

			// Pick a random set bit of the move mask.
			nth := rng.Intn(bits.OnesCount64(moves))
			mask := moves
			for i := 0; i < nth; i++ {
				mask &= mask - 1
			}
			moveMask := mask & -mask

			sq := bits.TrailingZeros64(moveMask)
			flips := slowFlips(sq, b.Me(), b.Op())
			next := b.MakeMove(moveMask)
			require.Equal(t, b.Op()&^flips, next.Me(),
				"Flipped disks should match the slow reference")
			require.Equal(t, b.Me()|flips|moveMask, next.Op(),
				"Placed and flipped disks should match the slow reference")

			b = next
		}
	}
}
