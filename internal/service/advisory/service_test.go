package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akilima/akilima/internal/domain/apperr"
)

func newTestService() *Service {
	return NewService(DefaultCatalog(), nil)
}

func TestListAll(t *testing.T) {
	svc := newTestService()

	entries := svc.ListAll()
	require.Len(t, entries, 4)

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []string{"tea", "coffee", "bananas", "avocados"}, ids)
}

func TestGet(t *testing.T) {
	svc := newTestService()

	t.Run("case-insensitive lookup", func(t *testing.T) {
		lower, err := svc.Get("tea")
		require.NoError(t, err)

		upper, err := svc.Get("TEA")
		require.NoError(t, err)

		assert.Equal(t, lower, upper)
		assert.Equal(t, "Camellia sinensis", lower.ScientificName)
	})

	t.Run("unknown crop is not found", func(t *testing.T) {
		_, err := svc.Get("unknown")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestForCrops(t *testing.T) {
	svc := newTestService()

	t.Run("empty selection is not an error", func(t *testing.T) {
		entries, message := svc.ForCrops(nil)
		assert.Empty(t, entries)
		assert.Equal(t, NoCropsSelectedMessage, message)
	})

	t.Run("unresolved ids dropped silently", func(t *testing.T) {
		entries, message := svc.ForCrops([]string{"tea", "bogus"})
		require.Len(t, entries, 1)
		assert.Equal(t, "tea", entries[0].ID)
		assert.Empty(t, message)
	})

	t.Run("selection order preserved", func(t *testing.T) {
		entries, _ := svc.ForCrops([]string{"avocados", "tea"})
		require.Len(t, entries, 2)
		assert.Equal(t, "avocados", entries[0].ID)
		assert.Equal(t, "tea", entries[1].ID)
	})
}
