package agent

import (
	"github.com/ejaszewski/runelore/game"
	"github.com/ejaszewski/runelore/searcher"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 6

type Option func(a *NegamaxAgent)

// WithDepth sets the fixed search depth.
func WithDepth(depth uint8) Option {
	return func(a *NegamaxAgent) {
		a.depth = depth
	}
}

// NegamaxAgent plays the move preferred by a fixed-depth negamax
// search.
type NegamaxAgent struct {
	depth uint8
}

func NewNegamaxAgent(options ...Option) *NegamaxAgent {
	a := &NegamaxAgent{depth: DefaultDepth}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *NegamaxAgent) FindMove(board *game.Board) (game.Move, bool) {
	move, _, ok := searcher.Negamax(board, a.depth)
	return move, ok
}

// Depth returns the configured search depth.
func (a *NegamaxAgent) Depth() uint8 {
	return a.depth
}
