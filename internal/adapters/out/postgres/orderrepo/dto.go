// Package orderrepo persists order aggregates and their item manifests.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one order aggregate. UpdatedAt moves on
// every write; for an order parked at WAITING_FOR_PAYMENT it marks when the
// order entered the status, which the expiry sweeps filter on.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string    `gorm:"uniqueIndex"`
	Status       int       `gorm:"index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	OutletID     uuid.UUID `gorm:"type:uuid;index"`
	AddressID    uuid.UUID `gorm:"type:uuid"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	TotalPrice   int64
	TotalWeight  float64
	PickupTime   time.Time
	DeliveryTime *time.Time
	InvoiceURL   string
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one manifest line of an order.
type ItemDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	LaundryItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity      int
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		Status:       int(aggregate.Status()),
		CustomerID:   aggregate.CustomerID().Bytes(),
		OutletID:     aggregate.OutletID().Bytes(),
		AddressID:    aggregate.AddressID().Bytes(),
		DriverID:     driverID,
		TotalPrice:   aggregate.TotalPrice(),
		TotalWeight:  aggregate.TotalWeight(),
		PickupTime:   aggregate.PickupTime(),
		DeliveryTime: aggregate.DeliveryTime(),
		InvoiceURL:   aggregate.InvoiceURL(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
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

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Status(dto.Status),
		customerID,
		outletID,
		addressID,
		driverID,
		dto.TotalPrice,
		dto.TotalWeight,
		dto.PickupTime,
		dto.DeliveryTime,
		dto.InvoiceURL,
	)
}

func itemFromDomain(orderID kernel.UUID, item order.Item) ItemDTO {
	return ItemDTO{
		OrderID:       orderID.Bytes(),
		LaundryItemID: item.LaundryItemID().Bytes(),
		Quantity:      item.Quantity(),
	}
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	laundryItemID, err := kernel.UUIDFromBytes(dto.LaundryItemID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(laundryItemID, dto.Quantity)
}
