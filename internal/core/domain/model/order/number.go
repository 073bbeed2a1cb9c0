package order

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// Number builds a unique human-facing order number from the creation day and
// the order's identifier, e.g. "LDR-20250314-6BA7B810".
func Number(at time.Time, id kernel.UUID) string {
	return fmt.Sprintf("LDR-%s-%s", at.Format("20060102"), strings.ToUpper(id.String()[:8]))
}
