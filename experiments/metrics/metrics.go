// Package metrics holds experiment result records and their CSV
// serialization.
package metrics

import "time"

// PerftRecord is one timed perft run.
type PerftRecord struct {
	Depth    uint8
	Nodes    uint64
	Duration time.Duration
}

// GameRecord is one finished benchmark game.
type GameRecord struct {
	ID         int
	Black      string // agent descriptions, e.g. "negamax-6"
	White      string
	Winner     string
	BlackDisks int
	WhiteDisks int
	Moves      int
	Duration   time.Duration
}
