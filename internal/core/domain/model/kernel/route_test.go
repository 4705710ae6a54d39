package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("valid route", func(t *testing.T) {
		route, err := kernel.NewRoute("CN", "Guangzhou", "CM")

		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.Equal(t, "CN", route.OriginCountry())
		assert.Equal(t, "Guangzhou", route.OriginCity())
		assert.Equal(t, "CM", route.DestinationCountry())
		assert.Equal(t, "CN/Guangzhou -> CM", route.Corridor())
	})

	tests := []struct {
		name                         string
		origin, city, destination    string
	}{
		{"missing origin country", "", "Guangzhou", "CM"},
		{"missing origin city", "CN", "", "CM"},
		{"missing destination country", "CN", "Guangzhou", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewRoute(tt.origin, tt.city, tt.destination)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestRoute_Validate(t *testing.T) {
	var zero kernel.Route
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestRoute_MatchesCorridor(t *testing.T) {
	guangzhou, _ := kernel.NewRoute("CN", "Guangzhou", "CM")
	shenzhen, _ := kernel.NewRoute("CN", "Shenzhen", "CM")
	dubai, _ := kernel.NewRoute("AE", "Dubai", "CM")

	// city differences do not break corridor equality
	assert.True(t, guangzhou.MatchesCorridor(shenzhen))
	assert.False(t, guangzhou.MatchesCorridor(dubai))

	assert.False(t, guangzhou.IsEqual(shenzhen))
	assert.True(t, guangzhou.IsEqual(guangzhou))
}
