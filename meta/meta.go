// meta/meta.go
package meta

// TRAIN_EPISODES defines the number of matches against the frozen self per cycle.
const TRAIN_EPISODES = 10_000

// EVAL_EPISODES defines the number of matches per evaluation duel.
const EVAL_EPISODES = 1_000

// CYCLES defines the number of self-play cycles.
const CYCLES = 10

// OPPONENT_EPSILON defines how often the frozen opponent plays at random.
const OPPONENT_EPSILON = 0.1

// Q-learning hyperparameters
const (
	ALPHA         = 0.1
	GAMMA         = 1.0 // Episodes are short and only the terminal reward is non-zero
	EPSILON       = 1.0
	MIN_EPSILON   = 0.1
	EPSILON_DECAY = 0.99995
)

// OUTPUT_DIR defines where per-run statistics are written.
const OUTPUT_DIR = "experiments/selfplay"
