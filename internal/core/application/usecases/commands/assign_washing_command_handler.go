package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AssignWashingCommandHandler records pricing and the item manifest, creates
// the payment invoice and moves the order from ARRIVED_AT_OUTLET to WASHING.
type AssignWashingCommandHandler struct {
	uowFactory StationUoWFactory
	gateway    ports.PaymentGateway
	clock      kernel.Clock
	notifier   Notifier
}

// NewAssignWashingCommandHandler creates a handler for washing assignment.
func NewAssignWashingCommandHandler(uowFactory StationUoWFactory, gateway ports.PaymentGateway, clock kernel.Clock, notifier Notifier) AssignWashingCommandHandler {
	return AssignWashingCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the washing assignment. Forbidden unless the actor is an
// admin of the order's outlet.
func (h AssignWashingCommandHandler) Handle(ctx context.Context, cmd AssignWashingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := requireRole(ctx, uow.StaffRepository(), cmd.AdminID(), staff.RoleAdmin, "assign washing")
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !member.WorksAt(parent.OutletID()) {
		return errs.NewForbiddenError("assign washing", "order belongs to another outlet")
	}

	if err = parent.AssignWashing(cmd.TotalPrice(), cmd.TotalWeight()); err != nil {
		return err
	}

	invoiceURL, err := h.gateway.CreateInvoice(ctx, parent.ID(), parent.TotalPrice())
	if err != nil {
		return err
	}
	if err = parent.AttachInvoice(invoiceURL); err != nil {
		return err
	}

	if err = orderRepo.ReplaceItems(ctx, parent.ID(), cmd.Items()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"New washing task",
		fmt.Sprintf("Order %s is assigned to washing", parent.OrderNumber()),
		notification.WorkersAudience{OutletID: parent.OutletID(), Station: order.StationWashing},
		h.clock.Now(),
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
