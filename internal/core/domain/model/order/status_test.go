package order_test

import (
	"testing"

	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 8, int(order.Cancelled))
	})

	t.Run("should round trip through wire names", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("ready_for_pickup")
	require.NoError(t, err)
	assert.Equal(t, order.ReadyForPickup, s)

	for _, bad := range []string{"", "unknown", "Delivered", "shipped"} {
		_, err := order.ParseStatus(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate())
	}
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.PickedUp.IsTerminal())

	assert.True(t, order.Placed.IsActive())
	assert.False(t, order.Delivered.IsActive())
	assert.False(t, order.Unknown.IsActive())
}
