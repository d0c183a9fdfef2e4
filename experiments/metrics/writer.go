package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	CyclesFile = "cycles.jsonl"
	ScoresFile = "scores.csv"
	SetupFile  = "setup.json"
)

type Setup struct {
	RunID      string    `json:"runId"`
	StartTime  time.Time `json:"startTime"`
	Parameters any       `json:"parameters"`
}

// Writer appends per-cycle statistics under a timestamped run directory:
// one JSON object per line in cycles.jsonl and one row per cycle in scores.csv.
type Writer struct {
	baseDir string
	cycles  *os.File
	scores  *os.File
	encoder *json.Encoder
	csv     *csv.Writer
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	cycles, err := os.OpenFile(filepath.Join(baseDir, CyclesFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open cycles file: %w", err)
	}
	scores, err := os.OpenFile(filepath.Join(baseDir, ScoresFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		cycles.Close()
		return nil, fmt.Errorf("failed to open scores file: %w", err)
	}

	w := &Writer{
		baseDir: baseDir,
		cycles:  cycles,
		scores:  scores,
		encoder: json.NewEncoder(cycles),
		csv:     csv.NewWriter(scores),
	}

	header := []string{"cycle", "train", "eval", "eval_random", "table_size", "epsilon"}
	if err := w.csv.Write(header); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write scores header: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write scores header: %w", err)
	}

	return w, nil
}

// Dir returns the run directory.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setupPath := filepath.Join(w.baseDir, SetupFile)
	f, err := os.Create(setupPath)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

// WriteCycle appends one record to both sinks.
func (w *Writer) WriteCycle(record CycleRecord) error {
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write cycle %d: %w", record.Cycle, err)
	}

	evalRandom := ""
	if record.EvalRandomScore != nil {
		evalRandom = strconv.FormatFloat(*record.EvalRandomScore, 'f', -1, 64)
	}
	row := []string{
		strconv.Itoa(record.Cycle),
		strconv.FormatFloat(record.TrainScore, 'f', -1, 64),
		strconv.FormatFloat(record.EvalScore, 'f', -1, 64),
		evalRandom,
		strconv.Itoa(record.TableSize),
		strconv.FormatFloat(record.Epsilon, 'f', -1, 64),
	}
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write score row for cycle %d: %w", record.Cycle, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush scores for cycle %d: %w", record.Cycle, err)
	}

	return nil
}

func (w *Writer) Close() error {
	var errs error
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to flush scores: %w", err))
	}
	if err := w.scores.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to close scores file: %w", err))
	}
	if err := w.cycles.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to close cycles file: %w", err))
	}
	return errs
}
