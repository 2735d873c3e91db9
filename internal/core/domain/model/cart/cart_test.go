package cart_test

import (
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	c := newCart(t)

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.StoreID())
	assert.InDelta(t, cart.DefaultDistanceKm, c.DistanceKm(), 1e-9)

	_, err := cart.NewCart(kernel.UUID{}, time.Now())
	require.Error(t, err)
}

func TestCart_AddItem(t *testing.T) {
	store := kernel.NewUUID()
	product := kernel.NewUUID()
	variant := kernel.NewUUID()
	size := kernel.NewUUID()

	t.Run("merges identical choice", func(t *testing.T) {
		c := newCart(t)

		first, err := c.AddItem(product, store, variant, nil, 1, time.Now())
		require.NoError(t, err)
		second, err := c.AddItem(product, store, variant, nil, 2, time.Now())
		require.NoError(t, err)

		assert.True(t, first.ID().IsEqual(second.ID()))
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 3, c.Lines()[0].Quantity())
		assert.True(t, c.StoreID().IsEqual(store))
	})

	t.Run("different size is a new line", func(t *testing.T) {
		c := newCart(t)

		_, err := c.AddItem(product, store, variant, nil, 1, time.Now())
		require.NoError(t, err)
		_, err = c.AddItem(product, store, variant, &size, 1, time.Now())
		require.NoError(t, err)

		assert.Len(t, c.Lines(), 2)
	})

	t.Run("other store empties the cart first", func(t *testing.T) {
		c := newCart(t)
		otherStore := kernel.NewUUID()

		_, err := c.AddItem(product, store, variant, nil, 4, time.Now())
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), otherStore, kernel.NewUUID(), nil, 1, time.Now())
		require.NoError(t, err)

		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 1, c.Lines()[0].Quantity())
		assert.True(t, c.StoreID().IsEqual(otherStore))
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		c := newCart(t)

		_, err := c.AddItem(product, store, variant, nil, 0, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := newCart(t)
	line, err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 1, time.Now())
	require.NoError(t, err)

	require.NoError(t, c.UpdateQuantity(line.ID(), 5, time.Now()))
	assert.Equal(t, 5, c.Lines()[0].Quantity())

	require.NoError(t, c.UpdateQuantity(line.ID(), 0, time.Now()))
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.StoreID())

	err = c.UpdateQuantity(line.ID(), 1, time.Now())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCart_Clear(t *testing.T) {
	c := newCart(t)
	_, err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 1, time.Now())
	require.NoError(t, err)

	c.Clear(time.Now())
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.StoreID())

	c.Clear(time.Now())
	assert.True(t, c.IsEmpty())
}

func TestCart_SetDistance(t *testing.T) {
	c := newCart(t)

	require.NoError(t, c.SetDistance(4.5, time.Now()))
	assert.InDelta(t, 4.5, c.DistanceKm(), 1e-9)

	require.ErrorIs(t, c.SetDistance(-1, time.Now()), errs.ErrValueIsInvalid)
	assert.InDelta(t, 4.5, c.DistanceKm(), 1e-9)
}
