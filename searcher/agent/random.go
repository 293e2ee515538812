package agent

import (
	"golang.org/x/exp/rand"

	"github.com/ejaszewski/runelore/game"
)

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent for strength experiments.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a random agent seeded for reproducibility.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(board *game.Board) (game.Move, bool) {
	if board.Terminal() {
		return game.Move{}, false
	}
	moves := board.LegalMoves()
	return moves[a.rng.Intn(len(moves))], true
}
