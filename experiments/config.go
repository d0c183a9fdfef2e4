package experiments

import (
	"io/fs"
	"os"
	"quarto/meta"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is read once at startup.
type Config struct {
	TrainEpisodes   int     `json:"trainEpisodes"`
	EvalEpisodes    int     `json:"evalEpisodes"`
	Cycles          int     `json:"cycles"`
	OpponentEpsilon float64 `json:"opponentEpsilon"`
	Alpha           float64 `json:"alpha"`
	Gamma           float64 `json:"gamma"`
	Epsilon         float64 `json:"epsilon"`
	MinEpsilon      float64 `json:"minEpsilon"`
	EpsilonDecay    float64 `json:"epsilonDecay"`
	EvalRandom      bool    `json:"evalRandom"`
	Seed            uint64  `json:"seed"` // 0 seeds from the clock
	OutputDir       string  `json:"outputDir"`
	LogLevel        string  `json:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		TrainEpisodes:   meta.TRAIN_EPISODES,
		EvalEpisodes:    meta.EVAL_EPISODES,
		Cycles:          meta.CYCLES,
		OpponentEpsilon: meta.OPPONENT_EPSILON,
		Alpha:           meta.ALPHA,
		Gamma:           meta.GAMMA,
		Epsilon:         meta.EPSILON,
		MinEpsilon:      meta.MIN_EPSILON,
		EpsilonDecay:    meta.EPSILON_DECAY,
		EvalRandom:      true,
		OutputDir:       meta.OUTPUT_DIR,
		LogLevel:        "info",
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment. Missing files are skipped.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "failed to load %s", path)
		}
	}
	return nil
}

// FromEnv overlays QUARTO_* environment variables on c.
func (c Config) FromEnv() (Config, error) {
	var errs error
	parseInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "invalid %s", key))
				return
			}
			*dst = n
		}
	}
	parseFloat := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "invalid %s", key))
				return
			}
			*dst = f
		}
	}

	parseInt("QUARTO_TRAIN_EPISODES", &c.TrainEpisodes)
	parseInt("QUARTO_EVAL_EPISODES", &c.EvalEpisodes)
	parseInt("QUARTO_CYCLES", &c.Cycles)
	parseFloat("QUARTO_OPPONENT_EPSILON", &c.OpponentEpsilon)
	parseFloat("QUARTO_ALPHA", &c.Alpha)
	parseFloat("QUARTO_GAMMA", &c.Gamma)
	parseFloat("QUARTO_EPSILON", &c.Epsilon)
	parseFloat("QUARTO_MIN_EPSILON", &c.MinEpsilon)
	parseFloat("QUARTO_EPSILON_DECAY", &c.EpsilonDecay)
	if v, ok := os.LookupEnv("QUARTO_EVAL_RANDOM"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "invalid QUARTO_EVAL_RANDOM"))
		} else {
			c.EvalRandom = b
		}
	}
	if v, ok := os.LookupEnv("QUARTO_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "invalid QUARTO_SEED"))
		} else {
			c.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("QUARTO_OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("QUARTO_LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	return c, errs
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = multierror.Append(errs, errors.Errorf(format, args...))
		}
	}

	check(c.TrainEpisodes > 0 && c.TrainEpisodes%2 == 0, "train episodes must be a positive even number, got %d", c.TrainEpisodes)
	check(c.EvalEpisodes > 0 && c.EvalEpisodes%2 == 0, "eval episodes must be a positive even number, got %d", c.EvalEpisodes)
	check(c.Cycles > 0, "cycles must be positive, got %d", c.Cycles)
	check(c.OpponentEpsilon >= 0 && c.OpponentEpsilon <= 1, "opponent epsilon must be in [0,1], got %g", c.OpponentEpsilon)
	check(c.Epsilon >= 0 && c.Epsilon <= 1, "epsilon must be in [0,1], got %g", c.Epsilon)
	check(c.MinEpsilon >= 0 && c.MinEpsilon <= c.Epsilon, "min epsilon must be in [0,epsilon], got %g", c.MinEpsilon)
	check(c.EpsilonDecay > 0 && c.EpsilonDecay <= 1, "epsilon decay must be in (0,1], got %g", c.EpsilonDecay)
	check(c.Alpha > 0 && c.Alpha <= 1, "alpha must be in (0,1], got %g", c.Alpha)
	check(c.Gamma >= 0 && c.Gamma <= 1, "gamma must be in [0,1], got %g", c.Gamma)
	check(c.OutputDir != "", "output dir must be set")

	return errs
}
