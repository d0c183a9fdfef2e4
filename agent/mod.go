// Package agent defines what an environment and a player must support so that
// the game master can pit any pair of players against any game.
package agent

import "quarto/experiments/metrics"

// State must be usable as a map key: equal boards are equal keys.
type State interface {
	comparable
	Depth() int
}

// Action is any value type; players return copies of the actions they are given.
type Action any

type Environment[S State, A Action] interface {
	Reset() (S, []A)
	Step(A) (S, float64, bool, []A)
}

// Player picks one of the given legal actions. Actions are never empty when a
// decision is requested.
type Player[S State, A Action] interface {
	TakeAction(state S, actions []A) A
}

// Starter is implemented by players that treat the first decision of a match specially.
type Starter[S State, A Action] interface {
	Start(state S, actions []A) A
}

// Stepper is implemented by players that learn from the reward since their last decision.
type Stepper[S State, A Action] interface {
	Step(state S, actions []A, reward float64) A
}

// Ender is implemented by players that learn from the terminal reward.
type Ender[S State] interface {
	End(state S, reward float64)
}

type StatsResetter interface {
	ResetStats()
}

type StatsReporter interface {
	Stats() (metrics.DecisionStats, bool)
}

// LearningPlayer can produce a frozen copy of itself to train against.
type LearningPlayer[S State, A Action] interface {
	Player[S, A]
	Stepper[S, A]
	Ender[S]
	Freeze() Player[S, A]
	CycleEnd()
}

// Summarizer exposes a view of a player's value table.
type Summarizer interface {
	Summary() metrics.TableSummary
}

// Start defaults to TakeAction.
func Start[S State, A Action](p Player[S, A], state S, actions []A) A {
	if s, ok := p.(Starter[S, A]); ok {
		return s.Start(state, actions)
	}
	return p.TakeAction(state, actions)
}

// Step defaults to ignoring the reward.
func Step[S State, A Action](p Player[S, A], state S, actions []A, reward float64) A {
	if s, ok := p.(Stepper[S, A]); ok {
		return s.Step(state, actions, reward)
	}
	return p.TakeAction(state, actions)
}

// End defaults to a no-op.
func End[S State, A Action](p Player[S, A], state S, reward float64) {
	if e, ok := p.(Ender[S]); ok {
		e.End(state, reward)
	}
}

func ResetStats[S State, A Action](p Player[S, A]) {
	if r, ok := p.(StatsResetter); ok {
		r.ResetStats()
	}
}

// Stats reports false for players that keep no statistics.
func Stats[S State, A Action](p Player[S, A]) (metrics.DecisionStats, bool) {
	if r, ok := p.(StatsReporter); ok {
		return r.Stats()
	}
	return metrics.DecisionStats{}, false
}
