package qlearning

import (
	"quarto/agent"
	"quarto/experiments/metrics"
)

// Learned is a frozen copy of a learner's table. It never learns and always
// plays the first best action; unseen states behave like all-zero rows, so the
// first action is picked, exactly as a fresh learner row would.
type Learned[S agent.State, A agent.Action] struct {
	table       table[S]
	metrics     metrics.Collector
	withMetrics bool
}

func (l *Learned[S, A]) TakeAction(state S, actions []A) A {
	if len(actions) == 0 {
		panic("no actions to choose from")
	}
	r, ok := l.table[state]
	if !ok {
		l.metrics.AddDummy()
		return actions[0]
	}

	index, learned := argmax(r.values)
	if learned {
		l.metrics.AddLearned()
	} else {
		l.metrics.AddDummy()
	}
	return actions[index]
}

// Size returns the number of states in the snapshot.
func (l *Learned[S, A]) Size() int {
	return len(l.table)
}

func (l *Learned[S, A]) ResetStats() {
	l.metrics.Reset()
}

func (l *Learned[S, A]) Stats() (metrics.DecisionStats, bool) {
	return l.metrics.Complete(), l.withMetrics
}
