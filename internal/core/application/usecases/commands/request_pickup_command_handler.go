package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pickup"
)

// RequestPickupCommandHandler creates the order and its pickup leg in one
// transaction and fans a "new pickup" notification out to the outlet's
// drivers.
type RequestPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewRequestPickupCommandHandler creates a handler for pickup requests.
func NewRequestPickupCommandHandler(uowFactory PickupUoWFactory, clock kernel.Clock, notifier Notifier) RequestPickupCommandHandler {
	return RequestPickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the pickup request. The order starts in WAITING_FOR_PICKUP
// and the pickup leg is claimable by any attending driver of the outlet.
func (h RequestPickupCommandHandler) Handle(ctx context.Context, cmd RequestPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.Number(now, cmd.OrderID()),
		cmd.CustomerID(),
		cmd.OutletID(),
		cmd.AddressID(),
		cmd.PickupTime(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	pickupID := kernel.NewUUID()
	pickupOrder, err := pickup.NewPickupOrder(pickupID, cmd.OrderID(), pickup.Number(now, pickupID))
	if err != nil {
		return err
	}

	if err = uow.PickupOrderRepository().Add(ctx, pickupOrder); err != nil {
		return err
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"New pickup available",
		fmt.Sprintf("Order %s is waiting for pickup", newOrder.OrderNumber()),
		notification.DriversAudience{OutletID: cmd.OutletID()},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(ctx, note)
	return nil
}
