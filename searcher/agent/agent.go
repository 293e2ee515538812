// Package agent provides move-selection policies on top of the
// searcher, for use by game drivers.
package agent

import (
	"github.com/ejaszewski/runelore/game"
)

// Agent picks a move for the side to move. The second result is false
// when the agent has nothing to play, which only happens on a board
// that is already over.
type Agent interface {
	FindMove(board *game.Board) (game.Move, bool)
}
