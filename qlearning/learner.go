// Package qlearning implements a tabular Q-learning player and its frozen,
// non-learning snapshot used as a self-play opponent.
package qlearning

import (
	"math"
	"quarto/agent"
	"quarto/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Learner keeps a sparse table from states to per-action values and learns
// online with the Q-learning rule while it plays.
type Learner[S agent.State, A agent.Action] struct {
	table        table[S]
	epsilon      float64
	minEpsilon   float64
	epsilonDecay float64
	alpha        float64
	gamma        float64
	rng          *rand.Rand
	metrics      metrics.Collector
	withMetrics  bool

	// Last decision, updated on the next Step or End
	prevState  S
	prevAction int
	hasPrev    bool
}

func NewLearner[S agent.State, A agent.Action](options ...Option) *Learner[S, A] {
	c := defaultConfig()
	for _, option := range options {
		option(&c)
	}
	if c.rng == nil {
		c.rng = newRand()
	}
	return &Learner[S, A]{
		table:        make(table[S]),
		epsilon:      c.epsilon,
		minEpsilon:   c.minEpsilon,
		epsilonDecay: c.epsilonDecay,
		alpha:        c.alpha,
		gamma:        c.gamma,
		rng:          c.rng,
		metrics:      c.collector(),
		withMetrics:  c.withMetrics,
	}
}

// TakeAction picks a random action with probability epsilon and the first best
// action otherwise. The decision is remembered for the next update.
func (l *Learner[S, A]) TakeAction(state S, actions []A) A {
	if len(actions) == 0 {
		panic("no actions to choose from")
	}
	r := l.table.lookupOrInit(state, len(actions))

	var index int
	if l.rng.Float64() < l.epsilon {
		index = l.rng.Intn(len(actions))
		l.metrics.AddRandom()
	} else {
		var learned bool
		index, learned = argmax(r.values)
		if learned {
			l.metrics.AddLearned()
		} else {
			l.metrics.AddDummy()
		}
	}

	l.prevState = state
	l.prevAction = index
	l.hasPrev = true
	return actions[index]
}

func (l *Learner[S, A]) Start(state S, actions []A) A {
	return l.TakeAction(state, actions)
}

// Step credits the previous decision with the reward it earned plus the
// discounted best value of the state it led to, then decides again.
func (l *Learner[S, A]) Step(state S, actions []A, reward float64) A {
	target := reward + l.gamma*l.table.maxValue(state)
	l.update(target)
	return l.TakeAction(state, actions)
}

// End credits the previous decision with the terminal reward and decays exploration.
func (l *Learner[S, A]) End(state S, reward float64) {
	l.update(reward)
	l.hasPrev = false
	l.epsilon = math.Max(l.minEpsilon, l.epsilon*l.epsilonDecay)
}

func (l *Learner[S, A]) update(target float64) {
	if !l.hasPrev {
		panic("update without a previous decision")
	}
	// Rows are created by TakeAction before any update
	r := l.table[l.prevState]
	r.values[l.prevAction] += l.alpha * (target - r.values[l.prevAction])
	r.visits++
}

// Freeze returns a read-only snapshot that shares nothing with the learner.
func (l *Learner[S, A]) Freeze() agent.Player[S, A] {
	return l.Frozen()
}

// Frozen is Freeze with the concrete type.
func (l *Learner[S, A]) Frozen() *Learned[S, A] {
	collector := metrics.NewNoCollector()
	if l.withMetrics {
		collector = metrics.NewCollector()
	}
	return &Learned[S, A]{
		table:       l.table.clone(),
		metrics:     collector,
		withMetrics: l.withMetrics,
	}
}

// CycleEnd logs the table coverage. It does not touch any value.
func (l *Learner[S, A]) CycleEnd() {
	summary := l.Summary()
	log.Info().Msgf("q-table size = %d, epsilon = %.5f", summary.Size, summary.Epsilon)
	for _, bucket := range summary.Depths {
		log.Debug().
			Int("depth", bucket.Depth).
			Int("states", bucket.States).
			Float64("avgVisits", bucket.AvgVisits).
			Msg("q-table depth")
	}
}

func (l *Learner[S, A]) Summary() metrics.TableSummary {
	return metrics.TableSummary{
		Size:    len(l.table),
		Epsilon: l.epsilon,
		Depths:  l.table.summarize(),
	}
}

func (l *Learner[S, A]) Epsilon() float64 {
	return l.epsilon
}

func (l *Learner[S, A]) ResetStats() {
	l.metrics.Reset()
}

func (l *Learner[S, A]) Stats() (metrics.DecisionStats, bool) {
	return l.metrics.Complete(), l.withMetrics
}
