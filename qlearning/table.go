package qlearning

import (
	"fmt"
	"quarto/agent"
	"quarto/experiments/metrics"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// row holds one value per legal action of a state, in the order the actions
// were offered when the state was first visited.
type row struct {
	visits int
	values []float64
}

type table[S agent.State] map[S]*row

// lookupOrInit returns the row for state, creating a zero row of the given
// width on first visit. A state always offers the same number of actions.
func (t table[S]) lookupOrInit(state S, width int) *row {
	r, ok := t[state]
	if !ok {
		r = &row{values: make([]float64, width)}
		t[state] = r
		return r
	}
	if len(r.values) != width {
		panic(fmt.Sprintf("state offers %d actions but its row has %d values", width, len(r.values)))
	}
	return r
}

// maxValue returns the best value of a state, or 0 for an unseen state.
func (t table[S]) maxValue(state S) float64 {
	r, ok := t[state]
	if !ok {
		return 0
	}
	return floats.Max(r.values)
}

// clone deep-copies the table so that no row is shared.
func (t table[S]) clone() table[S] {
	c := make(table[S], len(t))
	for state, r := range t {
		values := make([]float64, len(r.values))
		copy(values, r.values)
		c[state] = &row{visits: r.visits, values: values}
	}
	return c
}

// summarize buckets the rows by game depth.
func (t table[S]) summarize() []metrics.DepthBucket {
	visitsByDepth := make(map[int][]float64)
	for state, r := range t {
		depth := state.Depth()
		visitsByDepth[depth] = append(visitsByDepth[depth], float64(r.visits))
	}

	buckets := make([]metrics.DepthBucket, 0, len(visitsByDepth))
	for depth, visits := range visitsByDepth {
		buckets = append(buckets, metrics.DepthBucket{
			Depth:       depth,
			States:      len(visits),
			TotalVisits: int(floats.Sum(visits)),
			AvgVisits:   stat.Mean(visits, nil),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Depth < buckets[j].Depth })
	return buckets
}

// argmax picks the first best action. An all-zero row carries no information,
// which is reported as a dummy decision.
func argmax(values []float64) (index int, learned bool) {
	return floats.MaxIdx(values), floats.Norm(values, 1) != 0
}
