package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("tallying decisions", func(t *testing.T) {
		c := NewCollector()
		c.AddRandom()
		c.AddDummy()
		c.AddDummy()
		c.AddLearned()

		require.Equal(t, DecisionStats{Total: 4, Random: 1, Dummy: 2, Learned: 1}, c.Complete())
	})

	t.Run("reset zeroes every counter", func(t *testing.T) {
		c := NewCollector()
		c.AddRandom()
		c.AddLearned()
		c.Reset()

		require.Equal(t, DecisionStats{}, c.Complete())
	})

	t.Run("no-op collector never counts", func(t *testing.T) {
		c := NewNoCollector()
		c.AddRandom()
		c.AddDummy()

		require.Equal(t, DecisionStats{}, c.Complete())
	})
}
