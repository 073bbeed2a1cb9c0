package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

// testNow is a weekday morning; MORNING shifts scheduled to end at noon.
var testNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func restoredOrder(t *testing.T, status order.Status, customerID, outletID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"LDR-20260115-AB12CD34",
		status,
		customerID,
		outletID,
		kernel.NewUUID(),
		nil,
		50000,
		3.5,
		time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
		nil,
		"https://pay.example/inv/ab12cd34",
	)
	require.NoError(t, err)
	return o
}

func openAttendance(t *testing.T, userID kernel.UUID) *attendance.Attendance {
	t.Helper()
	record, err := attendance.NewAttendance(kernel.NewUUID(), userID, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return record
}

func driverAt(userID, outletID kernel.UUID) staff.Member {
	return staff.Member{UserID: userID, Role: staff.RoleDriver, OutletID: &outletID}
}

func workerAt(userID, outletID kernel.UUID, station order.Station) staff.Member {
	return staff.Member{UserID: userID, Role: staff.RoleWorker, OutletID: &outletID, Station: &station}
}

func adminAt(userID, outletID kernel.UUID) staff.Member {
	return staff.Member{UserID: userID, Role: staff.RoleAdmin, OutletID: &outletID}
}
