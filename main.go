package main

import (
	"flag"
	"fmt"
	"os"
	"quarto/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	envFile := flag.String("env", ".env", "Optional .env file with QUARTO_* variables")
	if err := parseEnvFlag(envFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}

	cfg, err := experiments.DefaultConfig().FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration from environment")
	}

	flag.IntVar(&cfg.TrainEpisodes, "train-episodes", cfg.TrainEpisodes, "Matches against the frozen self per cycle")
	flag.IntVar(&cfg.EvalEpisodes, "eval-episodes", cfg.EvalEpisodes, "Matches per evaluation duel")
	flag.IntVar(&cfg.Cycles, "cycles", cfg.Cycles, "Number of self-play cycles")
	flag.Float64Var(&cfg.OpponentEpsilon, "opponent-epsilon", cfg.OpponentEpsilon, "Exploration of the frozen opponent")
	flag.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "Learning rate")
	flag.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "Discount factor")
	flag.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "Initial exploration rate")
	flag.Float64Var(&cfg.MinEpsilon, "min-epsilon", cfg.MinEpsilon, "Exploration rate floor")
	flag.Float64Var(&cfg.EpsilonDecay, "epsilon-decay", cfg.EpsilonDecay, "Exploration decay per match")
	flag.BoolVar(&cfg.EvalRandom, "eval-random", cfg.EvalRandom, "Evaluate each snapshot against a random player")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 seeds from the clock)")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for run statistics")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	report, err := experiments.RunSelfPlay(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	fmt.Printf("Run %s finished in %s, statistics in %s\n", report.RunID, report.Elapsed, report.Dir)
}

// parseEnvFlag loads the .env file named by -env before the other flags are
// defined, so that its variables can provide their defaults.
func parseEnvFlag(envFile *string) error {
	for i, arg := range os.Args[1:] {
		switch {
		case arg == "-env" || arg == "--env":
			if i+2 < len(os.Args) {
				*envFile = os.Args[i+2]
			}
		case len(arg) > 5 && arg[:5] == "-env=":
			*envFile = arg[5:]
		case len(arg) > 6 && arg[:6] == "--env=":
			*envFile = arg[6:]
		}
	}
	return experiments.LoadEnv(*envFile)
}
