package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
)

func TestCatalogLookup(t *testing.T) {
	catalog := booking.DefaultCatalog()

	t.Run("serviço existente", func(t *testing.T) {
		s, ok := catalog.Lookup("mega-volume")
		require.True(t, ok)
		assert.Equal(t, "Mega Volume", s.Name)
		assert.Equal(t, 120, s.DurationMin)
		assert.Equal(t, 180, s.Price)
	})

	t.Run("serviço desconhecido", func(t *testing.T) {
		_, ok := catalog.Lookup("corte-masculino")
		assert.False(t, ok)
	})
}

func TestCatalogList(t *testing.T) {
	list := booking.DefaultCatalog().List()

	require.Len(t, list, 9)

	// ordem de cadastro preservada
	assert.Equal(t, "volume-brasileiro", list[0].ID)
	assert.Equal(t, "remocao", list[8].ID)

	for _, s := range list {
		assert.Positive(t, s.DurationMin)
		assert.GreaterOrEqual(t, s.Price, 0)
	}
}
