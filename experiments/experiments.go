package experiments

import (
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/gamemaster"
	"quarto/qlearning"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Report summarizes a finished self-play run.
type Report struct {
	RunID   string
	Dir     string
	Cycles  []gamemaster.CycleResult
	Elapsed time.Duration
}

// RunSelfPlay trains a Q-learning player on the quarto game by self-play and
// appends one statistics record per cycle under the configured output directory.
func RunSelfPlay(cfg Config) (report Report, err error) {
	if err := cfg.Validate(); err != nil {
		return report, errors.Wrap(err, "invalid configuration")
	}

	start := time.Now()
	report.RunID = uuid.NewString()

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return report, errors.Wrap(err, "failed to create statistics writer")
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()
	report.Dir = writer.Dir()

	if err := writer.WriteSetup(metrics.Setup{RunID: report.RunID, StartTime: start.UTC(), Parameters: cfg}); err != nil {
		return report, errors.Wrap(err, "failed to store setup")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	env := game.NewEnvironment()
	learner := qlearning.NewLearner[game.State, game.Action](
		qlearning.WithExploration(cfg.Epsilon, cfg.MinEpsilon, cfg.EpsilonDecay),
		qlearning.WithLearningRate(cfg.Alpha),
		qlearning.WithDiscount(cfg.Gamma),
		qlearning.WithRand(rng),
		qlearning.WithMetrics(),
	)

	log.Info().
		Str("run", report.RunID).
		Str("dir", report.Dir).
		Uint64("seed", seed).
		Msgf("starting self-play: %d cycles of %d training episodes", cfg.Cycles, cfg.TrainEpisodes)

	opts := gamemaster.TrainOptions{
		TrainEpisodes:   cfg.TrainEpisodes,
		EvalEpisodes:    cfg.EvalEpisodes,
		Cycles:          cfg.Cycles,
		OpponentEpsilon: cfg.OpponentEpsilon,
		EvalRandom:      cfg.EvalRandom,
		RunID:           report.RunID,
		Rand:            rng,
	}
	report.Cycles, err = gamemaster.Train[game.State, game.Action](env, learner, opts, writer)
	report.Elapsed = time.Since(start)
	if err != nil {
		return report, errors.Wrap(err, "self-play stopped")
	}

	log.Info().
		Str("run", report.RunID).
		Int("tableSize", learner.Summary().Size).
		Dur("elapsed", report.Elapsed).
		Msg("completed self-play")
	return report, nil
}
