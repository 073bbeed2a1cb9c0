package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

// StaffRepository is the read-only contract over the staff registry. Command
// handlers use it for role and outlet checks.
type StaffRepository interface {
	// Get retrieves the registry row of the given user.
	Get(ctx context.Context, userID kernel.UUID) (staff.Member, error)

	// CountAdminsOfOutlet counts registered admins of the outlet. The bypass
	// path fails with NoAdminsForOutlet when it is zero.
	CountAdminsOfOutlet(ctx context.Context, outletID kernel.UUID) (int64, error)
}
