package postgres

import (
	"fmt"

	"laundry/internal/adapters/out/postgres/attendancerepo"
	"laundry/internal/adapters/out/postgres/deliveryrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pickuprepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/adapters/out/postgres/workrepo"
	"laundry/internal/core/domain/model/work"

	"gorm.io/gorm"
)

// Migrate creates the schema and the partial unique indexes the domain's
// exclusivity rules lean on: one open shift per worker, one open attendance
// record per user and one live work process per order and station.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&pickuprepo.PickupOrderDTO{},
		&deliveryrepo.DeliveryOrderDTO{},
		&workrepo.WorkProcessDTO{},
		&workrepo.WorkerShiftDTO{},
		&attendancerepo.AttendanceDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.RecipientDTO{},
		&staffrepo.StaffMemberDTO{},
	)
	if err != nil {
		return err
	}

	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_worker_shifts_open
			ON worker_shifts (worker_id) WHERE end_time IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_attendances_open
			ON attendances (user_id) WHERE check_out IS NULL`,
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_processes_live
			ON work_processes (order_id, station) WHERE status IN (%d, %d, %d)`,
			work.Pending, work.InProcess, work.BypassRequested),
	}
	for _, stmt := range statements {
		if err = db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
