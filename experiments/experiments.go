// Package experiments contains the benchmark drivers: perft timing and
// agent match-ups, with CSV output for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ejaszewski/runelore/engine"
	"github.com/ejaszewski/runelore/experiments/metrics"
	"github.com/ejaszewski/runelore/searcher"
	"github.com/ejaszewski/runelore/searcher/agent"
)

// GamesPerMatchUp is the number of games played per agent pairing in
// the strength experiment.
const GamesPerMatchUp = 10

// RunPerft times perft at every depth up to maxDepth, reporting node
// counts and throughput, and writes the records under outDir.
func RunPerft(maxDepth uint8, outDir string) error {
	records := make([]metrics.PerftRecord, 0, maxDepth)

	for depth := uint8(1); depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := searcher.Perft(depth)
		elapsed := time.Since(start)

		log.Info().Uint8("depth", depth).Uint64("nodes", nodes).
			Dur("elapsed", elapsed).
			Float64("mnps", float64(nodes)/elapsed.Seconds()/1e6).
			Msg("perft")

		records = append(records, metrics.PerftRecord{
			Depth:    depth,
			Nodes:    nodes,
			Duration: elapsed,
		})
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}
	err = writer.WritePerftRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write perft records: %w", err)
	}

	log.Info().Str("dir", writer.Dir()).Msg("perft records written")
	return nil
}

// RunStrength plays each search depth against a random baseline and
// against the next shallower depth, and writes the game records under
// outDir.
func RunStrength(depths []uint8, outDir string) error {
	type matchUp struct {
		black, white agent.Agent
		blackDesc    string
		whiteDesc    string
	}

	matchUps := []matchUp{}
	for i, depth := range depths {
		matchUps = append(matchUps, matchUp{
			black:     agent.NewNegamaxAgent(agent.WithDepth(depth)),
			white:     agent.NewRandomAgent(uint64(depth)),
			blackDesc: fmt.Sprintf("negamax-%d", depth),
			whiteDesc: "random",
		})
		if i > 0 {
			matchUps = append(matchUps, matchUp{
				black:     agent.NewNegamaxAgent(agent.WithDepth(depth)),
				white:     agent.NewNegamaxAgent(agent.WithDepth(depths[i-1])),
				blackDesc: fmt.Sprintf("negamax-%d", depth),
				whiteDesc: fmt.Sprintf("negamax-%d", depths[i-1]),
			})
		}
	}

	records := []metrics.GameRecord{}
	id := 0
	for _, mu := range matchUps {
		log.Info().Str("black", mu.blackDesc).Str("white", mu.whiteDesc).
			Msg("starting match-up")
		for i := 0; i < GamesPerMatchUp; i++ {
			start := time.Now()
			result := engine.Local(mu.black, mu.white).Run()
			elapsed := time.Since(start)

			id++
			records = append(records, metrics.GameRecord{
				ID:         id,
				Black:      mu.blackDesc,
				White:      mu.whiteDesc,
				Winner:     result.Winner,
				BlackDisks: result.Black,
				WhiteDisks: result.White,
				Moves:      len(result.Moves),
				Duration:   elapsed,
			})
		}
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}
	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}

	log.Info().Str("dir", writer.Dir()).Msg("game records written")
	return nil
}
