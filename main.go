package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ejaszewski/runelore/engine"
	"github.com/ejaszewski/runelore/experiments"
	"github.com/ejaszewski/runelore/searcher"
	"github.com/ejaszewski/runelore/searcher/agent"
	"github.com/ejaszewski/runelore/server"
)

func main() {
	mode := flag.String("mode", "perft", "perft, bench, selfplay, strength or serve")
	depth := flag.Uint("depth", 11, "perft depth or search depth")
	addr := flag.String("addr", ":8080", "listen address for serve mode")
	out := flag.String("out", "experiments", "output directory for benchmark records")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "perft":
		start := time.Now()
		nodes := searcher.Perft(uint8(*depth))
		elapsed := time.Since(start)
		fmt.Println(nodes)
		fmt.Printf("Took %d ms\n", elapsed.Milliseconds())
	case "bench":
		err := experiments.RunPerft(uint8(*depth), *out)
		if err != nil {
			log.Fatal().Err(err).Msg("perft benchmark failed")
		}
	case "selfplay":
		black := agent.NewNegamaxAgent(agent.WithDepth(uint8(*depth)))
		white := agent.NewNegamaxAgent(agent.WithDepth(uint8(*depth)))
		e := engine.Local(black, white)
		result := e.Run()
		fmt.Print(e.Board)
		fmt.Printf("Winner: %s (B %d - W %d)\n", result.Winner, result.Black, result.White)
	case "strength":
		err := experiments.RunStrength([]uint8{2, 4, 6}, *out)
		if err != nil {
			log.Fatal().Err(err).Msg("strength experiment failed")
		}
	case "serve":
		err := server.New().ListenAndServe(*addr)
		if err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
