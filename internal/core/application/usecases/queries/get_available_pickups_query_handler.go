package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailablePickupsQueryHandler reads unclaimed pickup legs straight from
// the database, bypassing the aggregates. Oldest pickup time first so the
// longest-waiting customer is served first.
type GetAvailablePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePickupsQueryHandler creates a handler for available pickups.
func NewGetAvailablePickupsQueryHandler(db *gorm.DB) GetAvailablePickupsQueryHandler {
	return GetAvailablePickupsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAvailablePickupsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePickupsQuery,
) ([]GetAvailablePickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickups := make([]GetAvailablePickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			o.id,
			o.order_number,
			o.address_id,
			o.pickup_time
		FROM pickup_orders p
		JOIN orders o ON o.id = p.order_id
		WHERE p.status = ?
		  AND o.outlet_id = ?
		ORDER BY o.pickup_time
	`, pickup.WaitingForPickup, query.OutletID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailablePickupsQueryResponse
		var pickupID, orderID, addressID uuid.UUID

		err = rows.Scan(
			&pickupID,
			&orderID,
			&resp.OrderNumber,
			&addressID,
			&resp.PickupTime,
		)
		if err != nil {
			return nil, err
		}

		if resp.PickupOrderID, err = kernel.UUIDFromBytes(pickupID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.AddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, err
		}

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
