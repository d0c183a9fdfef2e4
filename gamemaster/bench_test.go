package gamemaster

import (
	"testing"

	"quarto/game"
	"quarto/player"
	"quarto/qlearning"

	"golang.org/x/exp/rand"
)

func BenchmarkRunMatchRandom(b *testing.B) {
	env := game.NewEnvironment()
	p1 := player.NewRandom[game.State, game.Action](rand.New(rand.NewSource(1)))
	p2 := player.NewRandom[game.State, game.Action](rand.New(rand.NewSource(2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RunMatch[game.State, game.Action](env, p1, p2)
	}
}

func BenchmarkRunMatchLearner(b *testing.B) {
	env := game.NewEnvironment()
	learner := qlearning.NewLearner[game.State, game.Action](qlearning.WithRand(rand.New(rand.NewSource(1))))
	opponent := player.NewOpponentWrapper(learner.Freeze(), 0.1, rand.New(rand.NewSource(2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RunMatch[game.State, game.Action](env, learner, opponent)
	}
}
