package parcel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airExpressRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute("CN", "Guangzhou", "CM")
	require.NoError(t, err)
	return route
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"FRT-0001",
		"SF123456789",
		"client-42",
		"phone accessories",
		airExpressRoute(t),
		kernel.TransportAirExpress,
		"standard",
		parcel.BillingByWeight,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("valid parcel starts pending and unassigned", func(t *testing.T) {
		p := testParcel(t)

		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.Departure())
		assert.False(t, p.IsAssigned())
		assert.Zero(t, p.Amount())
	})

	t.Run("tracking code is required", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), "", "", "client-42", "", airExpressRoute(t),
			kernel.TransportSea, "standard", parcel.BillingByWeight,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("client reference is required", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), "FRT-0001", "", "", "", airExpressRoute(t),
			kernel.TransportSea, "standard", parcel.BillingByWeight,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParcel_MatchesCode(t *testing.T) {
	p := testParcel(t)

	assert.True(t, p.MatchesCode("FRT-0001"))
	assert.True(t, p.MatchesCode("frt-0001"))
	assert.True(t, p.MatchesCode("sf123456789"))
	assert.False(t, p.MatchesCode("FRT-9999"))
	assert.False(t, p.MatchesCode(""))
}

func TestParcel_AssignTo(t *testing.T) {
	departureID := kernel.NewUUID()

	t.Run("eligible parcel is assigned", func(t *testing.T) {
		p := testParcel(t)

		err := p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress)

		require.NoError(t, err)
		require.NotNil(t, p.Departure())
		assert.True(t, p.Departure().IsEqual(departureID))
	})

	t.Run("assignment is idempotent", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress))

		err := p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress)

		require.NoError(t, err)
		assert.True(t, p.Departure().IsEqual(departureID))
	})

	t.Run("assignment to a different departure conflicts", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress))

		err := p.AssignTo(kernel.NewUUID(), airExpressRoute(t), kernel.TransportAirExpress)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, p.Departure().IsEqual(departureID))
	})

	t.Run("transport mismatch conflicts", func(t *testing.T) {
		p := testParcel(t)

		err := p.AssignTo(departureID, airExpressRoute(t), kernel.TransportSea)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, p.Departure())
	})

	t.Run("route mismatch conflicts", func(t *testing.T) {
		p := testParcel(t)
		dubai, _ := kernel.NewRoute("AE", "Dubai", "CM")

		err := p.AssignTo(departureID, dubai, kernel.TransportAirExpress)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("assignment does not change parcel status", func(t *testing.T) {
		p := testParcel(t)
		before := p.Status()

		require.NoError(t, p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress))

		assert.Equal(t, before, p.Status())
	})
}

func TestParcel_Unassign(t *testing.T) {
	departureID := kernel.NewUUID()

	t.Run("unassign removes the reference", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress))

		require.NoError(t, p.Unassign(departureID))
		assert.Nil(t, p.Departure())
	})

	t.Run("unassigning an unassigned parcel is a no-op", func(t *testing.T) {
		p := testParcel(t)

		require.NoError(t, p.Unassign(departureID))
		require.NoError(t, p.Unassign(departureID))
	})

	t.Run("unassigning from the wrong departure conflicts", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.AssignTo(departureID, airExpressRoute(t), kernel.TransportAirExpress))

		err := p.Unassign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, p.Departure().IsEqual(departureID))
	})
}

func TestParcel_Receive(t *testing.T) {
	t.Run("prices by weight", func(t *testing.T) {
		p := testParcel(t) // BillingByWeight

		err := p.Receive(12.5, 0.04, 3, 8000)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		assert.InDelta(t, 100000.0, p.Amount(), 0.001)
		assert.InDelta(t, 12.5, p.WeightKg(), 0.001)
	})

	t.Run("prices by quantity", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(), "FRT-0002", "", "client-7", "cartons", airExpressRoute(t),
			kernel.TransportSea, "carton", parcel.BillingByQuantity,
		)
		require.NoError(t, err)

		require.NoError(t, p.Receive(250, 1.2, 10, 15000))
		assert.InDelta(t, 150000.0, p.Amount(), 0.001)
	})

	t.Run("zero billable measure is rejected", func(t *testing.T) {
		p := testParcel(t)

		err := p.Receive(0, 0.04, 3, 8000)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})

	t.Run("cannot receive twice", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.Receive(12.5, 0.04, 3, 8000))

		require.ErrorIs(t, p.Receive(12.5, 0.04, 3, 8000), errs.ErrConflict)
	})
}

func TestParcel_AdvanceTo(t *testing.T) {
	p := testParcel(t)
	require.NoError(t, p.Receive(10, 0, 1, 100))

	t.Run("forward moves are allowed, including jumps", func(t *testing.T) {
		require.NoError(t, p.AdvanceTo(parcel.StatusCustoms))
		assert.Equal(t, parcel.StatusCustoms, p.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		require.NoError(t, p.AdvanceTo(parcel.StatusCustoms))
	})

	t.Run("backward moves conflict", func(t *testing.T) {
		err := p.AdvanceTo(parcel.StatusReceived)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestParcel_RecordPayment(t *testing.T) {
	p := testParcel(t)
	require.NoError(t, p.Receive(10, 0, 1, 1000)) // amount 10000

	require.NoError(t, p.RecordPayment(4000))
	require.NoError(t, p.RecordPayment(6000))
	assert.InDelta(t, 10000.0, p.PaidAmount(), 0.001)

	require.ErrorIs(t, p.RecordPayment(1), errs.ErrConflict)
	require.ErrorIs(t, p.RecordPayment(-5), errs.ErrValueIsInvalid)
}

func TestStatus_Next(t *testing.T) {
	sequence := []parcel.Status{
		parcel.StatusPending,
		parcel.StatusReceived,
		parcel.StatusInTransit,
		parcel.StatusCustoms,
		parcel.StatusArrived,
		parcel.StatusDelivered,
	}

	for i := 0; i < len(sequence)-1; i++ {
		next, err := sequence[i].Next()
		require.NoError(t, err)
		assert.Equal(t, sequence[i+1], next)
	}

	_, err := parcel.StatusDelivered.Next()
	require.ErrorIs(t, err, errs.ErrConflict)
}
