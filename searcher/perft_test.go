package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Published Othello perft values from the standard opening.
var perftNodes = []uint64{1, 4, 12, 56, 244, 1396, 8200, 55092, 390216}

func TestPerft(t *testing.T) {
	for depth, want := range perftNodes {
		require.Equal(t, want, Perft(uint8(depth)),
			"Perft(%d) should match the published node count", depth)
	}
}

func BenchmarkPerft(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Perft(8)
	}
}
