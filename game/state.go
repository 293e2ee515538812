package game

// Side identifies one of the two players. Black moves first.
type Side uint8

const (
	Black Side = iota
	White
)

func (s Side) flip() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// MoveType records whether a ply was a disk placement or a pass.
type MoveType uint8

const (
	Played MoveType = iota
	Passed
)

// GameState is the minimal per-game state the board masks cannot carry:
// the side to move and the type of the previous ply. The latter is what
// makes the double-pass end of game detectable. GameState is an
// immutable value; Play and Pass return fresh copies.
//
// Every Bitboard transition must be paired with the matching GameState
// transition, or the terminal check silently breaks.
type GameState struct {
	side Side
	last MoveType
}

// NewGameState returns the state at the opening position: Black to move,
// with the previous ply treated as a placement so that a first-ply pass
// is distinguishable.
func NewGameState() GameState {
	return GameState{side: Black, last: Played}
}

// Play returns the state after a disk placement.
func (g GameState) Play() GameState {
	return GameState{side: g.side.flip(), last: Played}
}

// Pass returns the state after a pass.
func (g GameState) Pass() GameState {
	return GameState{side: g.side.flip(), last: Passed}
}

// Side returns the side to move.
func (g GameState) Side() Side {
	return g.side
}

// Last returns the type of the previous ply.
func (g GameState) Last() MoveType {
	return g.last
}
