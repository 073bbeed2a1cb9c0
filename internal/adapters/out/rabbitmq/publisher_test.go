package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEnvelope_MapsAudiences(t *testing.T) {
	outletID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		audience notification.Audience
		want     audience
	}{
		{
			name:     "customer",
			audience: notification.CustomerAudience{CustomerID: customerID},
			want:     audience{Kind: "customer", UserID: customerID.String()},
		},
		{
			name:     "station workers",
			audience: notification.WorkersAudience{OutletID: outletID, Station: order.StationIroning},
			want:     audience{Kind: "workers", OutletID: outletID.String(), Station: "IRONING"},
		},
		{
			name:     "drivers",
			audience: notification.DriversAudience{OutletID: outletID},
			want:     audience{Kind: "drivers", OutletID: outletID.String()},
		},
		{
			name:     "admins",
			audience: notification.AdminsAudience{OutletID: outletID},
			want:     audience{Kind: "admins", OutletID: outletID.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := notification.NewNotification(kernel.NewUUID(), "Title", "Body", tt.audience, createdAt)
			require.NoError(t, err)

			env := toEnvelope(n)

			assert.Equal(t, tt.want, env.Audience)
			assert.Equal(t, "Title", env.Title)
			assert.Equal(t, createdAt, env.CreatedAt)
		})
	}
}

func TestEnvelope_JSONOmitsEmptyAudienceFields(t *testing.T) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), "Title", "Body",
		notification.DriversAudience{OutletID: kernel.NewUUID()},
		time.Now(),
	)
	require.NoError(t, err)

	body, err := json.Marshal(toEnvelope(n))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "user_id")
	assert.NotContains(t, string(body), "station")
}
