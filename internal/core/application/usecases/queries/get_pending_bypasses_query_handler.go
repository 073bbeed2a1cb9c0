package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/work"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBypassesQueryHandler reads unresolved bypass requests for one
// outlet, oldest first.
type GetPendingBypassesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBypassesQueryHandler creates a handler for pending bypasses.
func NewGetPendingBypassesQueryHandler(db *gorm.DB) GetPendingBypassesQueryHandler {
	return GetPendingBypassesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPendingBypassesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBypassesQuery,
) ([]GetPendingBypassesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bypasses := make([]GetPendingBypassesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wp.id,
			o.id,
			o.order_number,
			wp.station,
			wp.notes
		FROM work_processes wp
		JOIN orders o ON o.id = wp.order_id
		WHERE wp.outlet_id = ?
		  AND wp.status = ?
		ORDER BY wp.id
	`, query.OutletID().String(), work.BypassRequested).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingBypassesQueryResponse
		var workProcessID, orderID uuid.UUID
		var station int

		err = rows.Scan(
			&workProcessID,
			&orderID,
			&resp.OrderNumber,
			&station,
			&resp.Reason,
		)
		if err != nil {
			return nil, err
		}

		if resp.WorkProcessID, err = kernel.UUIDFromBytes(workProcessID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.Station = order.Station(station)

		bypasses = append(bypasses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bypasses, nil
}
