package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id kernel.UUID, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(id, qty)
	require.NoError(t, err)
	return item
}

func TestManifestChecker_Matches(t *testing.T) {
	checker := services.NewManifestChecker()
	shirtID := kernel.NewUUID()
	pantsID := kernel.NewUUID()

	manifest := []order.Item{
		mustItem(t, shirtID, 3),
		mustItem(t, pantsID, 2),
	}

	t.Run("exact match regardless of order", func(t *testing.T) {
		submitted := []order.Item{
			mustItem(t, pantsID, 2),
			mustItem(t, shirtID, 3),
		}
		assert.True(t, checker.Matches(manifest, submitted))
	})

	t.Run("split batches for one item sum up", func(t *testing.T) {
		submitted := []order.Item{
			mustItem(t, shirtID, 1),
			mustItem(t, shirtID, 2),
			mustItem(t, pantsID, 2),
		}
		assert.True(t, checker.Matches(manifest, submitted))
	})

	t.Run("wrong quantity", func(t *testing.T) {
		submitted := []order.Item{
			mustItem(t, shirtID, 2),
			mustItem(t, pantsID, 2),
		}
		assert.False(t, checker.Matches(manifest, submitted))
	})

	t.Run("missing line", func(t *testing.T) {
		submitted := []order.Item{
			mustItem(t, shirtID, 3),
		}
		assert.False(t, checker.Matches(manifest, submitted))
	})

	t.Run("extra line", func(t *testing.T) {
		submitted := []order.Item{
			mustItem(t, shirtID, 3),
			mustItem(t, pantsID, 2),
			mustItem(t, kernel.NewUUID(), 1),
		}
		assert.False(t, checker.Matches(manifest, submitted))
	})

	t.Run("empty submission", func(t *testing.T) {
		assert.False(t, checker.Matches(manifest, nil))
	})
}
