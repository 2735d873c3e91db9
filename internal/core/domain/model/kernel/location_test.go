package kernel_test

import (
	"testing"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "city centre", lat: 12.9716, lng: 77.5946},
		{name: "origin", lat: 0, lng: 0},
		{name: "corners", lat: -90, lng: 180},
		{name: "latitude too low", lat: -90.1, lng: 0, wantErr: true},
		{name: "latitude too high", lat: 91, lng: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -181, wantErr: true},
		{name: "longitude too high", lat: 0, lng: 180.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-9)
		})
	}
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value location", func(t *testing.T) {
		var loc kernel.Location
		require.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(12.97, 77.59)
	b, _ := kernel.NewLocation(12.97, 77.59)
	c, _ := kernel.NewLocation(13.00, 77.59)

	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = a.IsEqual(kernel.Location{})
	require.Error(t, err)
}

func TestLocation_DistanceKm(t *testing.T) {
	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewLocation(12.0, 77.0)
		b, _ := kernel.NewLocation(13.0, 77.0)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.2, d, 0.5)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewLocation(12.9716, 77.5946)
		b, _ := kernel.NewLocation(12.9352, 77.6245)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 4.0)
		assert.Less(t, ab, 6.0)
	})

	t.Run("distance to itself is zero", func(t *testing.T) {
		a, _ := kernel.NewLocation(12.9716, 77.5946)
		d, err := a.DistanceKm(a)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("unconstructed location fails", func(t *testing.T) {
		a, _ := kernel.NewLocation(12.9716, 77.5946)
		_, err := a.DistanceKm(kernel.Location{})
		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}
