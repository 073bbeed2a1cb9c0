package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/work"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationQueueQueryHandler reads the claimable orders of one station.
// An order is claimable when its status puts it at the station and no live
// IN_PROCESS or BYPASS_REQUESTED work process holds it.
type GetStationQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetStationQueueQueryHandler creates a handler for station queues.
func NewGetStationQueueQueryHandler(db *gorm.DB) GetStationQueueQueryHandler {
	return GetStationQueueQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStationQueueQueryHandler) Handle(
	ctx context.Context,
	query GetStationQueueQuery,
) ([]GetStationQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetStationQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.total_weight,
			EXISTS (
				SELECT 1 FROM work_processes wp
				WHERE wp.order_id = o.id
				  AND wp.station = ?
				  AND wp.status = ?
			) AS pending
		FROM orders o
		WHERE o.outlet_id = ?
		  AND o.status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM work_processes wp
			WHERE wp.order_id = o.id
			  AND wp.station = ?
			  AND wp.status IN (?, ?)
		  )
		ORDER BY o.pickup_time
	`,
		query.Station(), work.Pending,
		query.OutletID().String(), query.Station().Status(),
		query.Station(), work.InProcess, work.BypassRequested,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStationQueueQueryResponse
		var orderID uuid.UUID

		err = rows.Scan(
			&orderID,
			&resp.OrderNumber,
			&resp.TotalWeight,
			&resp.Pending,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		queue = append(queue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
