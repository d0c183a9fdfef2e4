package qlearning

import (
	"testing"

	"quarto/experiments/metrics"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type mockState struct {
	id    int
	depth int
}

func (s mockState) Depth() int {
	return s.depth
}

type mockAction struct {
	id int
}

func actions(n int) []mockAction {
	a := make([]mockAction, n)
	for i := range a {
		a[i] = mockAction{id: i}
	}
	return a
}

func greedy(options ...Option) *Learner[mockState, mockAction] {
	options = append([]Option{
		WithExploration(0, 0, 1),
		WithRand(rand.New(rand.NewSource(1))),
		WithMetrics(),
	}, options...)
	return NewLearner[mockState, mockAction](options...)
}

func TestLearnerTakeAction(t *testing.T) {
	t.Run("unseen state gets a zero row and picks the first action", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}

		got := l.TakeAction(s, actions(5))

		require.Equal(t, mockAction{id: 0}, got)
		require.Equal(t, make([]float64, 5), l.table[s].values)
		require.Equal(t, 0, l.table[s].visits, "Lookups should not count as visits")
		stats, ok := l.Stats()
		require.True(t, ok)
		require.Equal(t, metrics.DecisionStats{Total: 1, Dummy: 1}, stats)
	})

	t.Run("ties go to the earliest index", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}
		l.table[s] = &row{values: []float64{1, 3, 3, -2}}

		require.Equal(t, mockAction{id: 1}, l.TakeAction(s, actions(4)))
		stats, _ := l.Stats()
		require.Equal(t, int64(1), stats.Learned)
	})

	t.Run("row width is fixed on first visit", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}
		l.TakeAction(s, actions(3))

		require.Panics(t, func() {
			l.TakeAction(s, actions(4))
		})
	})

	t.Run("full exploration only takes random actions", func(t *testing.T) {
		l := NewLearner[mockState, mockAction](
			WithExploration(1, 1, 1),
			WithRand(rand.New(rand.NewSource(7))),
			WithMetrics(),
		)
		seen := map[mockAction]bool{}
		for i := 0; i < 200; i++ {
			seen[l.TakeAction(mockState{id: 1}, actions(4))] = true
		}

		require.Len(t, seen, 4, "Every action should eventually be explored")
		stats, _ := l.Stats()
		require.Equal(t, metrics.DecisionStats{Total: 200, Random: 200}, stats)
	})

	t.Run("empty actions panic", func(t *testing.T) {
		l := greedy()
		require.Panics(t, func() {
			l.TakeAction(mockState{}, nil)
		})
	})
}

func TestLearnerUpdate(t *testing.T) {
	t.Run("step applies the reward to the previous decision", func(t *testing.T) {
		l := greedy(WithLearningRate(0.5))
		s1, s2, s3 := mockState{id: 1}, mockState{id: 2}, mockState{id: 3}

		l.Start(s1, actions(3))
		got := l.Step(s2, actions(2), 10)

		require.Equal(t, mockAction{id: 0}, got)
		require.Equal(t, []float64{5, 0, 0}, l.table[s1].values, "0 + 0.5*(10 + 0 - 0)")
		require.Equal(t, 1, l.table[s1].visits)
		require.Equal(t, 0, l.table[s2].visits)

		l.End(s3, -4)

		require.Equal(t, []float64{-2, 0}, l.table[s2].values, "Terminal reward is used without bootstrap")
		require.Equal(t, 1, l.table[s2].visits)
		_, ok := l.table[s3]
		require.False(t, ok, "Terminal states are never inserted")
	})

	t.Run("step bootstraps on the best value of the new state", func(t *testing.T) {
		l := greedy(WithLearningRate(0.5), WithDiscount(0.5))
		s1, s2 := mockState{id: 1}, mockState{id: 2}
		l.table[s2] = &row{values: []float64{4, 6}}

		l.Start(s1, actions(1))
		got := l.Step(s2, actions(2), 1)

		require.Equal(t, mockAction{id: 1}, got)
		require.InDelta(t, 0.5*(1+0.5*6), l.table[s1].values[0], 1e-9)
	})

	t.Run("visits only grow on updates", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}
		for i := 1; i <= 3; i++ {
			l.Start(s, actions(2))
			l.TakeAction(s, actions(2))
			l.End(mockState{id: 9}, 1)
			require.Equal(t, i, l.table[s].visits)
		}
	})

	t.Run("updating without a decision panics", func(t *testing.T) {
		l := greedy()
		require.Panics(t, func() {
			l.End(mockState{}, 1)
		})
		require.Panics(t, func() {
			l.Step(mockState{}, actions(1), 1)
		})
	})
}

func TestLearnerEpsilonDecay(t *testing.T) {
	l := NewLearner[mockState, mockAction](
		WithExploration(1, 0.2, 0.5),
		WithRand(rand.New(rand.NewSource(3))),
	)

	previous := l.Epsilon()
	for i := 0; i < 10; i++ {
		l.Start(mockState{id: i}, actions(2))
		l.End(mockState{id: -1}, 0)
		require.LessOrEqual(t, l.Epsilon(), previous, "Epsilon should never increase")
		require.GreaterOrEqual(t, l.Epsilon(), 0.2, "Epsilon should never drop below its floor")
		previous = l.Epsilon()
	}
	require.Equal(t, 0.2, l.Epsilon())
}

func TestLearnerFreeze(t *testing.T) {
	t.Run("snapshot shares nothing with the learner", func(t *testing.T) {
		l := greedy(WithLearningRate(1))
		s1, s2 := mockState{id: 1}, mockState{id: 2}
		l.table[s1] = &row{values: []float64{0, 1}}

		frozen := l.Frozen()
		l.Start(s1, actions(2))
		l.End(s2, -5)

		require.Equal(t, []float64{0, -5}, l.table[s1].values)
		require.Equal(t, []float64{0, 1}, frozen.table[s1].values)
		require.Equal(t, 1, frozen.Size())
	})

	t.Run("snapshot plays the first best action", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}
		l.table[s] = &row{values: []float64{-1, 2, 2}}
		frozen := l.Freeze()

		first := frozen.TakeAction(s, actions(3))
		second := frozen.TakeAction(s, actions(3))

		require.Equal(t, mockAction{id: 1}, first)
		require.Equal(t, first, second, "Frozen play should be deterministic")
	})

	t.Run("unseen state yields the first action", func(t *testing.T) {
		frozen := greedy().Frozen()

		require.Equal(t, mockAction{id: 0}, frozen.TakeAction(mockState{id: 42}, actions(3)))
		stats, ok := frozen.Stats()
		require.True(t, ok)
		require.Equal(t, metrics.DecisionStats{Total: 1, Dummy: 1}, stats)

		frozen.ResetStats()
		stats, _ = frozen.Stats()
		require.Equal(t, metrics.DecisionStats{}, stats)
	})

	t.Run("all-zero row matches the learner's choice", func(t *testing.T) {
		l := greedy()
		s := mockState{id: 1}
		learnerChoice := l.TakeAction(s, actions(4))
		frozen := l.Frozen()

		require.Equal(t, learnerChoice, frozen.TakeAction(s, actions(4)))
	})
}

func TestLearnerSummary(t *testing.T) {
	l := greedy()
	l.table[mockState{id: 1, depth: 0}] = &row{visits: 4, values: []float64{0}}
	l.table[mockState{id: 2, depth: 2}] = &row{visits: 1, values: []float64{0}}
	l.table[mockState{id: 3, depth: 2}] = &row{visits: 2, values: []float64{0}}

	summary := l.Summary()

	require.Equal(t, 3, summary.Size)
	require.Equal(t, 0.0, summary.Epsilon)
	require.Equal(t, []metrics.DepthBucket{
		{Depth: 0, States: 1, TotalVisits: 4, AvgVisits: 4},
		{Depth: 2, States: 2, TotalVisits: 3, AvgVisits: 1.5},
	}, summary.Depths)

	before := l.table.clone()
	l.CycleEnd()
	require.Equal(t, before, l.table, "Logging should not touch values")
}
