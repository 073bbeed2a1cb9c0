package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStationQueueQuery_Valid(t *testing.T) {
	outletID := kernel.NewUUID()
	query, err := queries.NewGetStationQueueQuery(outletID, order.StationIroning)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OutletID().IsEqual(outletID))
	assert.Equal(t, order.StationIroning, query.Station())
}

func TestNewGetStationQueueQuery_UnknownStation(t *testing.T) {
	_, err := queries.NewGetStationQueueQuery(kernel.NewUUID(), order.StationUnknown)
	require.Error(t, err)
}

func TestGetStationQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStationQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStationQueueQueryIsNotConstructed)
}
