package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetStationQueueQueryIsNotConstructed = errors.New(
		"GetStationQueueQuery must be created via NewGetStationQueueQuery constructor",
	)
)

// GetStationQueueQuery retrieves the orders waiting at one station of an
// outlet that no shift has claimed yet. Workers poll it to pick their next
// task.
type GetStationQueueQuery struct {
	outletID kernel.UUID
	station  order.Station

	guard guard.ConstructorGuard
}

// NewGetStationQueueQuery creates a query for the station's claimable orders.
func NewGetStationQueueQuery(outletID kernel.UUID, station order.Station) (GetStationQueueQuery, error) {
	q := GetStationQueueQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		outletID.Validate(),
		station.Validate(),
	); err != nil {
		return GetStationQueueQuery{}, err
	}

	q.outletID = outletID
	q.station = station
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueueQueryIsNotConstructed)
}

// OutletID returns the outlet whose queue is requested.
func (q GetStationQueueQuery) OutletID() kernel.UUID { return q.outletID }

// Station returns the station whose queue is requested.
func (q GetStationQueueQuery) Station() order.Station { return q.station }

// GetStationQueueQueryResponse is one claimable order at the station. Pending
// reports whether a PENDING work process, queued by a bypass resolution,
// already exists for it.
type GetStationQueueQueryResponse struct {
	OrderID     kernel.UUID
	OrderNumber string
	TotalWeight float64
	Pending     bool
}
