package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("every violation is reported", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TrainEpisodes = 7
		cfg.EvalEpisodes = 0
		cfg.Cycles = -1
		cfg.Alpha = 2

		err := cfg.Validate()

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 4)
	})

	t.Run("floor above the starting epsilon", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Epsilon = 0.05

		require.Error(t, cfg.Validate())
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("overlaying variables", func(t *testing.T) {
		t.Setenv("QUARTO_CYCLES", "3")
		t.Setenv("QUARTO_ALPHA", "0.25")
		t.Setenv("QUARTO_EVAL_RANDOM", "false")
		t.Setenv("QUARTO_SEED", "99")

		cfg, err := DefaultConfig().FromEnv()

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Cycles)
		require.Equal(t, 0.25, cfg.Alpha)
		require.False(t, cfg.EvalRandom)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, DefaultConfig().TrainEpisodes, cfg.TrainEpisodes, "Unset variables keep defaults")
	})

	t.Run("malformed variables", func(t *testing.T) {
		t.Setenv("QUARTO_CYCLES", "many")
		t.Setenv("QUARTO_GAMMA", "one")

		_, err := DefaultConfig().FromEnv()

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 2)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing files are skipped", func(t *testing.T) {
		require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("variables are loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("QUARTO_TEST_LOADED=yes\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("QUARTO_TEST_LOADED") })

		require.NoError(t, LoadEnv(path))
		require.Equal(t, "yes", os.Getenv("QUARTO_TEST_LOADED"))
	})
}
