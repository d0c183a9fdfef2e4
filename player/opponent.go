package player

import (
	"quarto/agent"
	"quarto/experiments/metrics"
	"time"

	"golang.org/x/exp/rand"
)

// OpponentWrapper plays a random action with probability epsilon and
// delegates to the wrapped player otherwise. It keeps frozen self-play
// opponents from repeating one fixed line of play.
type OpponentWrapper[S agent.State, A agent.Action] struct {
	inner   agent.Player[S, A]
	epsilon float64
	rng     *rand.Rand
}

func NewOpponentWrapper[S agent.State, A agent.Action](inner agent.Player[S, A], epsilon float64, rng *rand.Rand) *OpponentWrapper[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &OpponentWrapper[S, A]{
		inner:   inner,
		epsilon: epsilon,
		rng:     rng,
	}
}

// Inner returns the wrapped player.
func (w *OpponentWrapper[S, A]) Inner() agent.Player[S, A] {
	return w.inner
}

func (w *OpponentWrapper[S, A]) TakeAction(state S, actions []A) A {
	if w.rng.Float64() < w.epsilon {
		return actions[w.rng.Intn(len(actions))]
	}
	return w.inner.TakeAction(state, actions)
}

func (w *OpponentWrapper[S, A]) ResetStats() {
	agent.ResetStats(w.inner)
}

func (w *OpponentWrapper[S, A]) Stats() (metrics.DecisionStats, bool) {
	return agent.Stats(w.inner)
}
