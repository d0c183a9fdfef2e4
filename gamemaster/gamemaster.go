// Package gamemaster runs matches and duels between players and drives
// self-play training cycles.
package gamemaster

import (
	"errors"
	"fmt"
	"quarto/agent"
)

var ErrOddEpisodes = errors.New("episodes must be a positive even number")

// RunMatch plays one game where p1 moves first and returns p1's score. The game
// is zero-sum, so p2's score is the opposite.
//
// Each player's step reward is its own last reward minus the opponent's, and
// the terminal rewards are relative the same way.
func RunMatch[S agent.State, A agent.Action](env agent.Environment[S, A], p1, p2 agent.Player[S, A]) float64 {
	state, actions := env.Reset()

	// Player 1's first action
	state, reward1, done, actions := env.Step(agent.Start(p1, state, actions))
	score := reward1
	if done {
		panic("game ended on the first move")
	}

	// Player 2's first action
	state, reward2, done, actions := env.Step(agent.Start(p2, state, actions))
	score -= reward2
	if done {
		panic("game ended on the second move")
	}

	for {
		checkActions(actions)
		state, reward1, done, actions = env.Step(agent.Step(p1, state, actions, reward1-reward2))
		score += reward1
		if done {
			agent.End(p1, state, reward1)
			agent.End(p2, state, reward2-reward1)
			return score
		}

		checkActions(actions)
		state, reward2, done, actions = env.Step(agent.Step(p2, state, actions, reward2-reward1))
		score -= reward2
		if done {
			agent.End(p2, state, reward2)
			agent.End(p1, state, reward1-reward2)
			return score
		}
	}
}

func checkActions[A agent.Action](actions []A) {
	if len(actions) == 0 {
		panic("environment returned no actions on a non-terminal state")
	}
}

// RunDuel plays episodes matches, swapping the starting player after each one
// to cancel the first-move advantage, and returns p1's average score.
func RunDuel[S agent.State, A agent.Action](env agent.Environment[S, A], p1, p2 agent.Player[S, A], episodes int) (float64, error) {
	if episodes <= 0 || episodes%2 != 0 {
		return 0, fmt.Errorf("cannot run a duel of %d episodes: %w", episodes, ErrOddEpisodes)
	}

	score := 0.0
	for i := 0; i < episodes; i += 2 {
		score += RunMatch(env, p1, p2)
		score -= RunMatch(env, p2, p1)
	}
	return score / float64(episodes), nil
}
