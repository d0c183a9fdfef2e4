// Package player provides simple fixed-policy players used as opponents and evaluators.
package player

import (
	"quarto/agent"
	"time"

	"golang.org/x/exp/rand"
)

// Dummy always picks the first legal action.
type Dummy[S agent.State, A agent.Action] struct{}

func NewDummy[S agent.State, A agent.Action]() *Dummy[S, A] {
	return &Dummy[S, A]{}
}

func (p *Dummy[S, A]) TakeAction(state S, actions []A) A {
	return actions[0]
}

// Random picks uniformly among the legal actions.
type Random[S agent.State, A agent.Action] struct {
	rng *rand.Rand
}

// NewRandom uses a time-seeded source when rng is nil.
func NewRandom[S agent.State, A agent.Action](rng *rand.Rand) *Random[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random[S, A]{rng: rng}
}

func (p *Random[S, A]) TakeAction(state S, actions []A) A {
	return actions[p.rng.Intn(len(actions))]
}
