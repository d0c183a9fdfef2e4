package metrics

import "sync/atomic"

// DecisionStats tallies how a player picked its actions. Random decisions are
// exploration moves; greedy decisions are either dummy (taken from an all-zero
// or unseen row, i.e. no information) or learned (the row has a non-zero value).
type DecisionStats struct {
	Total   int64 `json:"total"`
	Random  int64 `json:"random"`
	Dummy   int64 `json:"dummy"`
	Learned int64 `json:"learned"`
}

type Collector interface {
	AddRandom()
	AddDummy()
	AddLearned()
	Reset()
	Complete() DecisionStats
}

type collector struct {
	total   atomic.Int64
	random  atomic.Int64
	dummy   atomic.Int64
	learned atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddRandom() {
	c.total.Add(1)
	c.random.Add(1)
}

func (c *collector) AddDummy() {
	c.total.Add(1)
	c.dummy.Add(1)
}

func (c *collector) AddLearned() {
	c.total.Add(1)
	c.learned.Add(1)
}

func (c *collector) Reset() {
	c.total.Store(0)
	c.random.Store(0)
	c.dummy.Store(0)
	c.learned.Store(0)
}

func (c *collector) Complete() DecisionStats {
	return DecisionStats{
		Total:   c.total.Load(),
		Random:  c.random.Load(),
		Dummy:   c.dummy.Load(),
		Learned: c.learned.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (c *noCollector) AddRandom()              {}
func (c *noCollector) AddDummy()               {}
func (c *noCollector) AddLearned()             {}
func (c *noCollector) Reset()                  {}
func (c *noCollector) Complete() DecisionStats { return DecisionStats{} }
