package qlearning

import (
	"quarto/experiments/metrics"
	"quarto/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(l *learnerConfig)

type learnerConfig struct {
	epsilon      float64
	minEpsilon   float64
	epsilonDecay float64
	alpha        float64
	gamma        float64
	rng          *rand.Rand
	withMetrics  bool
}

func defaultConfig() learnerConfig {
	return learnerConfig{
		epsilon:      meta.EPSILON,
		minEpsilon:   meta.MIN_EPSILON,
		epsilonDecay: meta.EPSILON_DECAY,
		alpha:        meta.ALPHA,
		gamma:        meta.GAMMA,
	}
}

// WithExploration sets the initial exploration rate, its floor and the decay
// factor applied after every match.
func WithExploration(epsilon, minEpsilon, decay float64) Option {
	return func(c *learnerConfig) {
		if epsilon >= 0 && epsilon <= 1 {
			c.epsilon = epsilon
		}
		if minEpsilon >= 0 && minEpsilon <= 1 {
			c.minEpsilon = minEpsilon
		}
		if decay > 0 && decay <= 1 {
			c.epsilonDecay = decay
		}
	}
}

func WithLearningRate(alpha float64) Option {
	return func(c *learnerConfig) {
		if alpha > 0 && alpha <= 1 {
			c.alpha = alpha
		}
	}
}

func WithDiscount(gamma float64) Option {
	return func(c *learnerConfig) {
		if gamma >= 0 && gamma <= 1 {
			c.gamma = gamma
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *learnerConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(c *learnerConfig) {
		c.withMetrics = true
	}
}

func (c learnerConfig) collector() metrics.Collector {
	if c.withMetrics {
		return metrics.NewCollector()
	}
	return metrics.NewNoCollector()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
