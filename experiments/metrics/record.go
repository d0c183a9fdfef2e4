package metrics

import "time"

// DepthBucket describes the table rows for states at one game depth.
type DepthBucket struct {
	Depth       int     `json:"depth"`
	States      int     `json:"states"`
	TotalVisits int     `json:"totalVisits"`
	AvgVisits   float64 `json:"avgVisits"`
}

// TableSummary is a read-only view of a value table.
type TableSummary struct {
	Size    int           `json:"size"`
	Epsilon float64       `json:"epsilon"`
	Depths  []DepthBucket `json:"depths"`
}

// CycleRecord is appended to the statistics sink after every training cycle.
type CycleRecord struct {
	RunID           string        `json:"runId"`
	Cycle           int           `json:"cycle"`
	Cycles          int           `json:"cycles"`
	TrainEpisodes   int           `json:"trainEpisodes"`
	EvalEpisodes    int           `json:"evalEpisodes"`
	TotalEpisodes   int           `json:"totalEpisodes"` // Played so far, all duels included
	TrainScore      float64       `json:"trainScore"`
	EvalScore       float64       `json:"evalScore"`
	EvalRandomScore *float64      `json:"evalRandomScore,omitempty"`
	TrainStats      DecisionStats `json:"trainStats"`
	EvalRandomStats DecisionStats `json:"evalRandomStats"`
	TableSize       int           `json:"tableSize"`
	Depths          []DepthBucket `json:"depths"`
	Epsilon         float64       `json:"epsilon"`
	Time            time.Time     `json:"time"`
}
