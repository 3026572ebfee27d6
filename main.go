package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordgrid/crossfill/config"
	"github.com/wordgrid/crossfill/crossword"
	"github.com/wordgrid/crossfill/filler"
	"github.com/wordgrid/crossfill/render"
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config.Config{}
	if err := cfg.Load(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cw, err := crossword.Load(cfg.StructurePath, cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load crossword")
	}

	f := filler.New(cw, filler.WithSeed(cfg.Seed))
	assignment, err := f.Solve()
	if err != nil {
		fmt.Println("No solution.")
		os.Exit(1)
	}

	fmt.Print(render.Text(cw, assignment))
	if cfg.OutputPath != "" {
		if err := render.SavePNG(cw, assignment, cfg.OutputPath); err != nil {
			log.Fatal().Err(err).Msg("could not save image")
		}
		log.Info().Str("path", cfg.OutputPath).Msg("saved image")
	}
}
