// Package workrepo persists station work processes and worker shifts. The
// PENDING to IN_PROCESS claim is a conditional update; partial unique indexes
// keep at most one live process per order and station and one open shift per
// worker.
package workrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/work"

	"github.com/google/uuid"
)

// WorkProcessDTO is the database row for one station visit.
type WorkProcessDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	OutletID    uuid.UUID  `gorm:"type:uuid;index"`
	ShiftID     *uuid.UUID `gorm:"type:uuid;index"`
	Station     int
	Status      int `gorm:"index"`
	Notes       string
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming to use "work_processes".
func (WorkProcessDTO) TableName() string {
	return "work_processes"
}

// WorkerShiftDTO is the database row for one worker shift.
type WorkerShiftDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID `gorm:"type:uuid;index"`
	OutletID  uuid.UUID `gorm:"type:uuid;index"`
	Station   int
	Label     int
	StartTime time.Time
	EndTime   *time.Time
}

// TableName overrides GORM's default naming to use "worker_shifts".
func (WorkerShiftDTO) TableName() string {
	return "worker_shifts"
}

func processFromDomain(aggregate *work.WorkProcess) WorkProcessDTO {
	var shiftID *uuid.UUID
	if id := aggregate.Shift(); id != nil {
		raw := id.Bytes()
		shiftID = &raw
	}

	return WorkProcessDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		OutletID:    aggregate.OutletID().Bytes(),
		ShiftID:     shiftID,
		Station:     int(aggregate.Station()),
		Status:      int(aggregate.Status()),
		Notes:       aggregate.Notes(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

func processToDomain(dto WorkProcessDTO) (*work.WorkProcess, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}

	var shiftID *kernel.UUID
	if dto.ShiftID != nil {
		sID, shiftErr := kernel.UUIDFromBytes((*dto.ShiftID)[:])
		if shiftErr != nil {
			return nil, shiftErr
		}
		shiftID = &sID
	}

	return work.RestoreWorkProcess(
		id,
		orderID,
		outletID,
		shiftID,
		order.Station(dto.Station),
		work.Status(dto.Status),
		dto.Notes,
		dto.CompletedAt,
	)
}

func shiftFromDomain(aggregate *work.WorkerShift) WorkerShiftDTO {
	return WorkerShiftDTO{
		ID:        aggregate.ID().Bytes(),
		WorkerID:  aggregate.WorkerID().Bytes(),
		OutletID:  aggregate.OutletID().Bytes(),
		Station:   int(aggregate.Station()),
		Label:     int(aggregate.Label()),
		StartTime: aggregate.Start(),
		EndTime:   aggregate.End(),
	}
}

func shiftToDomain(dto WorkerShiftDTO) (*work.WorkerShift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}
	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}

	return work.RestoreWorkerShift(
		id,
		workerID,
		outletID,
		order.Station(dto.Station),
		work.ShiftLabel(dto.Label),
		dto.StartTime,
		dto.EndTime,
	)
}
