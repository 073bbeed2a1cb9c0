package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20250314-0001",
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts waiting for pickup with zero price and weight", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.WaitingForPickup, o.Status())
		assert.Zero(t, o.TotalPrice())
		assert.Zero(t, o.TotalWeight())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.DeliveryTime())
		require.NoError(t, o.Validate())
	})

	t.Run("requires an order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires valid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, "ORD-1", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

// TestOrder_FullPipeline walks an order through the happy path:
// pickup -> stations -> payment -> delivery.
func TestOrder_FullPipeline(t *testing.T) {
	o := newTestOrder(t)
	driver := kernel.NewUUID()

	require.NoError(t, o.AssignPickupDriver(driver))
	assert.Equal(t, order.LaundryOnTheWay, o.Status())
	require.NotNil(t, o.Driver())
	assert.True(t, o.Driver().IsEqual(driver))

	require.NoError(t, o.ArriveAtOutlet())
	assert.Equal(t, order.ArrivedAtOutlet, o.Status())

	require.NoError(t, o.AssignWashing(45000, 3.5))
	assert.Equal(t, order.Washing, o.Status())
	assert.Equal(t, int64(45000), o.TotalPrice())
	assert.InDelta(t, 3.5, o.TotalWeight(), 0.001)

	require.NoError(t, o.CompleteStation(order.StationWashing, false))
	assert.Equal(t, order.Ironing, o.Status())

	require.NoError(t, o.CompleteStation(order.StationIroning, false))
	assert.Equal(t, order.Packing, o.Status())

	require.NoError(t, o.CompleteStation(order.StationPacking, false))
	assert.Equal(t, order.WaitingForPayment, o.Status())

	require.NoError(t, o.AttachInvoice("https://pay.example/inv/1"))
	require.NoError(t, o.MarkPaid())
	assert.Equal(t, order.ReadyForDelivery, o.Status())
	assert.Equal(t, "https://pay.example/inv/1", o.InvoiceURL())

	deliveryDriver := kernel.NewUUID()
	require.NoError(t, o.AssignDeliveryDriver(deliveryDriver))
	assert.Equal(t, order.DeliveryOnTheWay, o.Status())

	deliveredAt := time.Date(2025, time.March, 16, 18, 30, 0, 0, time.Local)
	require.NoError(t, o.CompleteDelivery(deliveredAt))
	assert.Equal(t, order.Completed, o.Status())
	require.NotNil(t, o.DeliveryTime())
	assert.Equal(t, deliveredAt, *o.DeliveryTime())
}

func TestOrder_PackingPaidSkipsWaitingForPayment(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AssignPickupDriver(kernel.NewUUID()))
	require.NoError(t, o.ArriveAtOutlet())
	require.NoError(t, o.AssignWashing(10000, 1))
	require.NoError(t, o.CompleteStation(order.StationWashing, false))
	require.NoError(t, o.CompleteStation(order.StationIroning, false))

	require.NoError(t, o.CompleteStation(order.StationPacking, true))

	assert.Equal(t, order.ReadyForDelivery, o.Status())
}

func TestOrder_InvalidTransitions(t *testing.T) {
	t.Run("cannot complete a station the order is not at", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.CompleteStation(order.StationIroning, false)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.WaitingForPickup, o.Status())
	})

	t.Run("cannot complete packing twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPickupDriver(kernel.NewUUID()))
		require.NoError(t, o.ArriveAtOutlet())
		require.NoError(t, o.AssignWashing(10000, 1))
		require.NoError(t, o.CompleteStation(order.StationWashing, false))
		require.NoError(t, o.CompleteStation(order.StationIroning, false))
		require.NoError(t, o.CompleteStation(order.StationPacking, false))

		err := o.CompleteStation(order.StationPacking, false)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.WaitingForPayment, o.Status())
	})

	t.Run("cannot cancel an order that is not waiting for payment", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.CancelUnpaid(), errs.ErrInvalidTransition)
	})

	t.Run("cannot deliver before payment", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.AssignDeliveryDriver(kernel.NewUUID()), errs.ErrInvalidTransition)
	})
}

func TestOrder_AssignWashingValidation(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AssignPickupDriver(kernel.NewUUID()))
	require.NoError(t, o.ArriveAtOutlet())

	require.ErrorIs(t, o.AssignWashing(0, 2), errs.ErrValueIsInvalid)
	require.ErrorIs(t, o.AssignWashing(1000, 0), errs.ErrValueIsInvalid)
	assert.Equal(t, order.ArrivedAtOutlet, o.Status())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores mutable fields", func(t *testing.T) {
		id := kernel.NewUUID()
		driver := kernel.NewUUID()
		deliveredAt := time.Now()

		o, err := order.RestoreOrder(
			id, "ORD-1", order.Completed,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&driver, 45000, 3.5, time.Now(), &deliveredAt, "https://pay.example/inv/9",
		)
		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Driver().IsEqual(driver))
		assert.Equal(t, "https://pay.example/inv/9", o.InvoiceURL())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1", order.Unknown,
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, 0, time.Now(), nil, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewItem(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity())

	_, err = order.NewItem(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewItem(kernel.UUID{}, 1)
	require.Error(t, err)
}

func TestNewItems(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	items, err := order.NewItems(map[kernel.UUID]int{a: 2, b: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = order.NewItems(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewItems(map[kernel.UUID]int{a: -1})
	require.Error(t, err)
}
