// Package staff models the read-side registry of who works where. Command
// handlers consult it for role and outlet checks; the notification adapter
// resolves audiences against it.
package staff

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Role classifies a registered user.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleDriver
	RoleWorker
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleDriver:   "DRIVER",
		RoleWorker:   "WORKER",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses a stored role string.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// String returns the canonical SCREAMING_SNAKE representation.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return getRoleStrings()[RoleUnknown]
}

// Validate returns an error for the zero value.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsRequiredError("role")
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// Member is one registry row. OutletID is set for drivers, workers and
// admins; Station only for workers.
type Member struct {
	UserID   kernel.UUID
	Role     Role
	OutletID *kernel.UUID
	Station  *order.Station
}

// WorksAt reports whether the member is attached to the given outlet.
func (m Member) WorksAt(outletID kernel.UUID) bool {
	return m.OutletID != nil && m.OutletID.IsEqual(outletID)
}
