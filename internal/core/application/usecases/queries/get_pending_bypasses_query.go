package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetPendingBypassesQueryIsNotConstructed = errors.New(
		"GetPendingBypassesQuery must be created via NewGetPendingBypassesQuery constructor",
	)
)

// GetPendingBypassesQuery retrieves the outlet's unresolved bypass requests.
// Admins work through this list to unblock suspended stations.
type GetPendingBypassesQuery struct {
	outletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingBypassesQuery creates a query for the outlet's open bypasses.
func NewGetPendingBypassesQuery(outletID kernel.UUID) (GetPendingBypassesQuery, error) {
	if err := outletID.Validate(); err != nil {
		return GetPendingBypassesQuery{}, err
	}
	return GetPendingBypassesQuery{outletID: outletID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBypassesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBypassesQueryIsNotConstructed)
}

// OutletID returns the outlet whose bypass requests are requested.
func (q GetPendingBypassesQuery) OutletID() kernel.UUID { return q.outletID }

// GetPendingBypassesQueryResponse is one unresolved bypass request. Reason
// carries the discrepancy note the worker filed.
type GetPendingBypassesQueryResponse struct {
	WorkProcessID kernel.UUID
	OrderID       kernel.UUID
	OrderNumber   string
	Station       order.Station
	Reason        string
}
