// Package deliveryrepo persists delivery legs, mirroring the pickup side with
// the same conditional-claim exclusivity.
package deliveryrepo

import (
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryOrderDTO is the database row for one delivery leg.
type DeliveryOrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	Status         int        `gorm:"index"`
	DeliveryNumber string     `gorm:"uniqueIndex"`
	DeliveredAt    *time.Time
}

// TableName overrides GORM's default naming to use "delivery_orders".
func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

func fromDomain(aggregate *delivery.DeliveryOrder) DeliveryOrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryOrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		DriverID:       driverID,
		Status:         int(aggregate.Status()),
		DeliveryNumber: aggregate.DeliveryNumber(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}
}

func toDomain(dto DeliveryOrderDTO) (*delivery.DeliveryOrder, error) {
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

	return delivery.RestoreDeliveryOrder(
		id,
		orderID,
		driverID,
		delivery.Status(dto.Status),
		dto.DeliveryNumber,
		dto.DeliveredAt,
	)
}
