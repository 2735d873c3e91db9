package order_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	customer order.Actor
	merchant order.Actor
	agent    order.Actor
	rival    order.Actor
	admin    order.Actor
	stranger order.Actor
}

func newFixture() fixture {
	return fixture{
		customer: order.NewActor(kernel.NewUUID(), kernel.RoleCustomer, false),
		merchant: order.NewActor(kernel.NewUUID(), kernel.RoleMerchant, false),
		agent:    order.NewActor(kernel.NewUUID(), kernel.RoleAgent, true),
		rival:    order.NewActor(kernel.NewUUID(), kernel.RoleAgent, true),
		admin:    order.NewActor(kernel.NewUUID(), kernel.RoleAdmin, false),
		stranger: order.NewActor(kernel.NewUUID(), kernel.RoleMerchant, false),
	}
}

func validItems() []order.Item {
	return []order.Item{{
		ProductID:   kernel.NewUUID(),
		VariantID:   kernel.NewUUID(),
		ProductName: "Masala Dosa",
		VariantName: "Regular",
		UnitPrice:   kernel.MoneyFromInt(100),
		Quantity:    2,
		ItemTotal:   kernel.MoneyFromInt(200),
	}}
}

func validCharges() order.Charges {
	return order.Charges{
		Subtotal:        kernel.MoneyFromInt(200),
		BaseDeliveryFee: kernel.MoneyFromInt(20),
		DeliveryFee:     kernel.MoneyFromInt(20),
		PlatformFee:     kernel.MoneyFromInt(10),
		Total:           kernel.MoneyFromInt(220),
	}
}

func validDestination(t *testing.T) order.Destination {
	t.Helper()
	loc, err := kernel.NewLocation(12.97, 77.59)
	require.NoError(t, err)
	return order.Destination{Address: "12 Park Street", Location: loc, DistanceKm: 2}
}

func placeOrder(t *testing.T, f fixture) *order.Order {
	t.Helper()
	otp, err := order.OTPFromString("4821")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-12345", f.customer.ID, kernel.NewUUID(), f.merchant.ID,
		validItems(), validCharges(), otp, validDestination(t), order.Promotions{}, time.Now())
	require.NoError(t, err)
	return o
}

// advance drives the order along the happy path up to target.
func advance(t *testing.T, f fixture, o *order.Order, target order.Status) {
	t.Helper()
	now := time.Now()
	steps := []struct {
		to  order.Status
		run func() error
	}{
		{order.Accepted, func() error { return o.Accept(f.merchant, now) }},
		{order.Preparing, func() error { return o.Transition(f.merchant, order.Preparing, now) }},
		{order.ReadyForPickup, func() error { return o.Transition(f.merchant, order.ReadyForPickup, now) }},
		{order.Assigned, func() error { return o.Claim(f.agent, now) }},
		{order.PickedUp, func() error { return o.Transition(f.agent, order.PickedUp, now) }},
		{order.Delivered, func() error { return o.Deliver(f.agent, "4821", now) }},
	}
	for _, s := range steps {
		if o.Status() == target {
			return
		}
		if s.to <= o.Status() {
			continue
		}
		require.NoError(t, s.run(), "moving to %s", s.to)
	}
}

func TestNewOrder(t *testing.T) {
	f := newFixture()

	t.Run("should place order with snapshot", func(t *testing.T) {
		o := placeOrder(t, f)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.AgentID())
		assert.Equal(t, "4821", o.OTP().String())
		assert.Equal(t, order.Number("ORD-12345"), o.Number())
		assert.True(t, o.Charges().Total.IsEqual(kernel.MoneyFromInt(220)))

		changes := o.PendingChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, order.Unknown, changes[0].From)
		assert.Equal(t, order.Placed, changes[0].To)
	})

	t.Run("should reject inconsistent totals", func(t *testing.T) {
		otp, _ := order.OTPFromString("1234")
		charges := validCharges()
		charges.Total = kernel.MoneyFromInt(999)

		o, err := order.NewOrder(kernel.NewUUID(), "ORD-12345", f.customer.ID, kernel.NewUUID(), f.merchant.ID,
			validItems(), charges, otp, validDestination(t), order.Promotions{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "12345", kernel.UUID{}, kernel.UUID{}, kernel.UUID{},
			nil, order.Charges{}, order.OTP{}, order.Destination{}, order.Promotions{}, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "order_number")
		assert.Contains(t, err.Error(), "otp")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "delivery_address")
	})
}

func TestNewNumber(t *testing.T) {
	for range 100 {
		n, err := order.NewNumber()
		require.NoError(t, err)
		require.NoError(t, n.Validate())
	}
}

func TestOrder_HappyPath(t *testing.T) {
	f := newFixture()
	o := placeOrder(t, f)
	o.ClearPendingChanges()

	advance(t, f, o, order.Delivered)

	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.AgentID())
	assert.True(t, o.AgentID().IsEqual(f.agent.ID))

	var path []order.Status
	for _, c := range o.PendingChanges() {
		path = append(path, c.To)
	}
	assert.Equal(t, []order.Status{
		order.Accepted, order.Preparing, order.ReadyForPickup, order.Assigned, order.PickedUp, order.Delivered,
	}, path)
	assert.Equal(t, "4821", o.OTP().String())
}

func TestOrder_Transition(t *testing.T) {
	f := newFixture()
	now := time.Now()

	t.Run("merchant cannot skip from placed to ready_for_pickup", func(t *testing.T) {
		o := placeOrder(t, f)

		err := o.Transition(f.merchant, order.ReadyForPickup, now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("merchant of another store cannot accept", func(t *testing.T) {
		o := placeOrder(t, f)
		require.ErrorIs(t, o.Accept(f.stranger, now), order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("customer cannot accept", func(t *testing.T) {
		o := placeOrder(t, f)
		require.ErrorIs(t, o.Transition(f.customer, order.Accepted, now), order.ErrInvalidTransition)
	})

	t.Run("assigned and delivered are not reachable through status update", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.ReadyForPickup)
		require.ErrorIs(t, o.Transition(f.agent, order.Assigned, now), order.ErrInvalidTransition)

		advance(t, f, o, order.PickedUp)
		require.ErrorIs(t, o.Transition(f.agent, order.Delivered, now), order.ErrInvalidTransition)
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("no backward moves", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.Preparing)
		require.ErrorIs(t, o.Transition(f.merchant, order.Accepted, now), order.ErrInvalidTransition)
	})

	t.Run("unknown target status is a validation error", func(t *testing.T) {
		o := placeOrder(t, f)
		require.ErrorIs(t, o.Transition(f.merchant, order.Status(99), now), errs.ErrValueIsInvalid)
	})

	t.Run("cancellation rights", func(t *testing.T) {
		o := placeOrder(t, f)
		require.NoError(t, o.Transition(f.customer, order.Cancelled, now))
		require.ErrorIs(t, o.Transition(f.admin, order.Cancelled, now), order.ErrInvalidTransition)

		o = placeOrder(t, f)
		advance(t, f, o, order.Accepted)
		require.ErrorIs(t, o.Transition(f.customer, order.Cancelled, now), order.ErrInvalidTransition)
		require.NoError(t, o.Transition(f.merchant, order.Cancelled, now))

		o = placeOrder(t, f)
		advance(t, f, o, order.PickedUp)
		require.ErrorIs(t, o.Transition(f.merchant, order.Cancelled, now), order.ErrInvalidTransition)
		require.NoError(t, o.Transition(f.admin, order.Cancelled, now))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("only the assigned agent picks up", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.Assigned)

		require.ErrorIs(t, o.Transition(f.rival, order.PickedUp, now), order.ErrInvalidTransition)
		require.NoError(t, o.Transition(f.agent, order.PickedUp, now))
	})
}

func TestOrder_Claim(t *testing.T) {
	f := newFixture()
	now := time.Now()

	t.Run("first claim wins", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.ReadyForPickup)

		require.NoError(t, o.Claim(f.agent, now))
		err := o.Claim(f.rival, now)

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.AgentID().IsEqual(f.agent.ID))
	})

	t.Run("claiming an order already held is not a lost race", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.ReadyForPickup)
		require.NoError(t, o.Claim(f.agent, now))
		o.ClearPendingChanges()

		err := o.Claim(f.agent, now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.NotErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Empty(t, o.PendingChanges())
	})

	t.Run("offline agent cannot claim", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.ReadyForPickup)
		offline := order.NewActor(kernel.NewUUID(), kernel.RoleAgent, false)

		require.ErrorIs(t, o.Claim(offline, now), order.ErrInvalidTransition)
		assert.Nil(t, o.AgentID())
	})

	t.Run("order must be ready for pickup", func(t *testing.T) {
		o := placeOrder(t, f)
		require.ErrorIs(t, o.Claim(f.agent, now), order.ErrInvalidTransition)
	})

	t.Run("only agents claim", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.ReadyForPickup)
		require.ErrorIs(t, o.Claim(f.merchant, now), order.ErrInvalidTransition)
	})
}

func TestOrder_Deliver(t *testing.T) {
	f := newFixture()
	now := time.Now()

	t.Run("exact otp delivers", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.PickedUp)

		require.NoError(t, o.Deliver(f.agent, "4821", now))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("wrong otp keeps picked_up and allows retry", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.PickedUp)

		for range 5 {
			require.ErrorIs(t, o.Deliver(f.agent, "0000", now), order.ErrInvalidOTP)
			assert.Equal(t, order.PickedUp, o.Status())
		}
		require.NoError(t, o.Deliver(f.agent, "4821", now))
	})

	t.Run("other agent cannot deliver even with the right code", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.PickedUp)

		require.ErrorIs(t, o.Deliver(f.rival, "4821", now), order.ErrInvalidTransition)
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("cannot deliver before pickup", func(t *testing.T) {
		o := placeOrder(t, f)
		advance(t, f, o, order.Assigned)
		require.ErrorIs(t, o.Deliver(f.agent, "4821", now), order.ErrInvalidTransition)
	})
}

func TestOrder_ValidTransitions(t *testing.T) {
	f := newFixture()

	o := placeOrder(t, f)
	assert.ElementsMatch(t, []order.Status{order.Accepted, order.Cancelled}, o.ValidTransitions(f.merchant))
	assert.ElementsMatch(t, []order.Status{order.Cancelled}, o.ValidTransitions(f.customer))
	assert.ElementsMatch(t, []order.Status{order.Cancelled}, o.ValidTransitions(f.admin))
	assert.Empty(t, o.ValidTransitions(f.agent))
	assert.Empty(t, o.ValidTransitions(f.stranger))

	advance(t, f, o, order.ReadyForPickup)
	assert.ElementsMatch(t, []order.Status{order.Assigned}, o.ValidTransitions(f.agent))
	assert.Empty(t, o.ValidTransitions(f.merchant))

	advance(t, f, o, order.PickedUp)
	assert.ElementsMatch(t, []order.Status{order.Delivered}, o.ValidTransitions(f.agent))
	assert.Empty(t, o.ValidTransitions(f.rival))

	advance(t, f, o, order.Delivered)
	assert.Empty(t, o.ValidTransitions(f.admin))
}

func TestOrder_Visibility(t *testing.T) {
	f := newFixture()
	o := placeOrder(t, f)

	assert.True(t, o.CanView(f.customer))
	assert.True(t, o.CanView(f.merchant))
	assert.True(t, o.CanView(f.admin))
	assert.False(t, o.CanView(f.stranger))
	assert.False(t, o.CanView(f.agent))

	advance(t, f, o, order.ReadyForPickup)
	assert.True(t, o.CanView(f.rival))

	advance(t, f, o, order.Assigned)
	assert.True(t, o.CanView(f.agent))
	assert.False(t, o.CanView(f.rival))

	assert.True(t, o.CanSeeOTP(f.customer))
	assert.False(t, o.CanSeeOTP(f.agent))
	assert.False(t, o.CanSeeOTP(f.merchant))
	assert.False(t, o.CanSeeOTP(f.admin))
}

// Random sequences of requests by random actors never move an order backwards and never change
// its OTP.
func TestOrder_StatusOnlyMovesForward(t *testing.T) {
	f := newFixture()
	actors := []order.Actor{f.customer, f.merchant, f.agent, f.rival, f.admin, f.stranger}
	targets := order.AllStatuses()
	rng := rand.New(rand.NewPCG(1, 2))

	for run := range 300 {
		o := placeOrder(t, f)
		for range 20 {
			before := o.Status()
			a := actors[rng.IntN(len(actors))]
			now := time.Now()

			switch rng.IntN(3) {
			case 0:
				_ = o.Transition(a, targets[rng.IntN(len(targets))], now)
			case 1:
				_ = o.Claim(a, now)
			default:
				code := "4821"
				if rng.IntN(2) == 0 {
					code = "0000"
				}
				_ = o.Deliver(a, code, now)
			}

			after := o.Status()
			if after != before {
				assert.False(t, before.IsTerminal(), "run %d left terminal %s", run, before)
				assert.True(t, after == order.Cancelled || after > before,
					"run %d moved backwards %s -> %s", run, before, after)
			}
			assert.Equal(t, "4821", o.OTP().String())
		}
	}
}
