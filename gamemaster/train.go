package gamemaster

import (
	"fmt"
	"quarto/agent"
	"quarto/experiments/metrics"
	"quarto/player"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type TrainOptions struct {
	TrainEpisodes   int     // Matches against the frozen self per cycle
	EvalEpisodes    int     // Matches per evaluation duel
	Cycles          int
	OpponentEpsilon float64 // Exploration of the frozen training opponent
	EvalRandom      bool    // Also evaluate each snapshot against a random player
	RunID           string
	Rand            *rand.Rand
}

// CycleSink receives one record per training cycle.
type CycleSink interface {
	WriteCycle(record metrics.CycleRecord) error
}

type CycleResult struct {
	Cycle           int
	TrainScore      float64
	EvalScore       float64
	EvalRandomScore float64
	HasEvalRandom   bool
}

func (o TrainOptions) validate() error {
	for _, episodes := range []int{o.TrainEpisodes, o.EvalEpisodes} {
		if episodes <= 0 || episodes%2 != 0 {
			return fmt.Errorf("invalid episode count %d: %w", episodes, ErrOddEpisodes)
		}
	}
	if o.Cycles <= 0 {
		return fmt.Errorf("invalid cycle count %d", o.Cycles)
	}
	return nil
}

// Train improves the learner by self-play. Every cycle it trains the learner
// against a frozen, slightly exploratory snapshot of itself, freezes a new
// snapshot, evaluates it against the previous snapshot (and optionally a random
// player), then makes it the next opponent. Only one player learns at a time.
//
// A sink failure stops training; the results of completed cycles are returned
// with the error.
func Train[S agent.State, A agent.Action](
	env agent.Environment[S, A],
	learner agent.LearningPlayer[S, A],
	opts TrainOptions,
	sink CycleSink,
) ([]CycleResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	random := player.NewRandom[S, A](rng)
	adversary := player.NewOpponentWrapper(learner.Freeze(), opts.OpponentEpsilon, rng)
	results := make([]CycleResult, 0, opts.Cycles)
	episodes := 0

	for cycle := 1; cycle <= opts.Cycles; cycle++ {
		// Train against a fixed adversary
		agent.ResetStats[S, A](learner)
		trainScore := mustDuel[S, A](env, learner, adversary, opts.TrainEpisodes)
		trainStats, _ := agent.Stats[S, A](learner)
		episodes += opts.TrainEpisodes

		// Evaluate the newly trained snapshot against the previous one
		newAdversary := player.NewOpponentWrapper(learner.Freeze(), opts.OpponentEpsilon, rng)
		evalScore := mustDuel[S, A](env, newAdversary.Inner(), adversary.Inner(), opts.EvalEpisodes)
		episodes += opts.EvalEpisodes

		result := CycleResult{Cycle: cycle, TrainScore: trainScore, EvalScore: evalScore}
		var evalRandomStats metrics.DecisionStats
		if opts.EvalRandom {
			agent.ResetStats(newAdversary.Inner())
			result.EvalRandomScore = mustDuel[S, A](env, newAdversary.Inner(), random, opts.EvalEpisodes)
			result.HasEvalRandom = true
			evalRandomStats, _ = agent.Stats(newAdversary.Inner())
			episodes += opts.EvalEpisodes
		}

		adversary = newAdversary
		results = append(results, result)

		log.Info().Msgf("cycle %d/%d: avg train score = %.3f, avg eval score = %.3f, avg eval random score = %.3f",
			cycle, opts.Cycles, result.TrainScore, result.EvalScore, result.EvalRandomScore)

		if sink != nil {
			record := newCycleRecord(opts, result, episodes, trainStats, evalRandomStats, learner)
			if err := sink.WriteCycle(record); err != nil {
				return results, fmt.Errorf("failed to record cycle %d: %w", cycle, err)
			}
		}

		learner.CycleEnd()
	}

	return results, nil
}

// mustDuel runs a duel whose episode count was validated up front.
func mustDuel[S agent.State, A agent.Action](env agent.Environment[S, A], p1, p2 agent.Player[S, A], episodes int) float64 {
	score, err := RunDuel(env, p1, p2, episodes)
	if err != nil {
		panic(err)
	}
	return score
}

func newCycleRecord[S agent.State, A agent.Action](
	opts TrainOptions,
	result CycleResult,
	episodes int,
	trainStats, evalRandomStats metrics.DecisionStats,
	learner agent.LearningPlayer[S, A],
) metrics.CycleRecord {
	record := metrics.CycleRecord{
		RunID:           opts.RunID,
		Cycle:           result.Cycle,
		Cycles:          opts.Cycles,
		TrainEpisodes:   opts.TrainEpisodes,
		EvalEpisodes:    opts.EvalEpisodes,
		TotalEpisodes:   episodes,
		TrainScore:      result.TrainScore,
		EvalScore:       result.EvalScore,
		TrainStats:      trainStats,
		EvalRandomStats: evalRandomStats,
		Time:            time.Now().UTC(),
	}
	if result.HasEvalRandom {
		score := result.EvalRandomScore
		record.EvalRandomScore = &score
	}
	if s, ok := learner.(agent.Summarizer); ok {
		summary := s.Summary()
		record.TableSize = summary.Size
		record.Depths = summary.Depths
		record.Epsilon = summary.Epsilon
	}
	return record
}
