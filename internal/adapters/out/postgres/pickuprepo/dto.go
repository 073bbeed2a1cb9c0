// Package pickuprepo persists pickup legs. The driver claim is a conditional
// update on the unassigned row, which makes it the authoritative loser
// detector for racing drivers.
package pickuprepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupOrderDTO is the database row for one pickup leg.
type PickupOrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status       int        `gorm:"index"`
	PickupNumber string     `gorm:"uniqueIndex"`
	PickupAt     *time.Time
	ProofURL     string
}

// TableName overrides GORM's default naming to use "pickup_orders".
func (PickupOrderDTO) TableName() string {
	return "pickup_orders"
}

func fromDomain(aggregate *pickup.PickupOrder) PickupOrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return PickupOrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		DriverID:     driverID,
		Status:       int(aggregate.Status()),
		PickupNumber: aggregate.PickupNumber(),
		PickupAt:     aggregate.PickupAt(),
		ProofURL:     aggregate.ProofURL(),
	}
}

func toDomain(dto PickupOrderDTO) (*pickup.PickupOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return pickup.RestorePickupOrder(
		id,
		orderID,
		driverID,
		pickup.Status(dto.Status),
		dto.PickupNumber,
		dto.PickupAt,
		dto.ProofURL,
	)
}
