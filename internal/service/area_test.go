package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ClementNdome/agri-insight/internal/geometry"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// A roughly 123 ha square near Nairobi, closed ring.
func testPolygonJSON() json.RawMessage {
	return json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[
			[36.80, -1.30],
			[36.81, -1.30],
			[36.81, -1.29],
			[36.80, -1.29],
			[36.80, -1.30]
		]]
	}`)
}

func newTestAreaService(t *testing.T) (AreaService, *mocks.MockAreaRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAreaRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAreaService(repoMock, logger), repoMock
}

func TestCreateArea_DerivesSpatialAttributes(t *testing.T) {
	service, repoMock := newTestAreaService(t)
	ctx := context.Background()

	area := &models.AreaOfInterest{
		OwnerID:  "farmer-1",
		Name:     "North field",
		Geometry: testPolygonJSON(),
		CropType: "maize",
	}

	repoMock.EXPECT().Create(ctx, area).Return(nil)

	err := service.CreateArea(ctx, area)

	require.NoError(t, err)
	assert.True(t, area.IsActive)
	assert.InDelta(t, 123, area.AreaHectares, 10)
	assert.InDelta(t, -1.295, area.CentroidLat, 0.01)
	assert.InDelta(t, 36.805, area.CentroidLon, 0.01)
}

func TestCreateArea_InvalidGeometry(t *testing.T) {
	service, _ := newTestAreaService(t)
	ctx := context.Background()

	area := &models.AreaOfInterest{
		OwnerID:  "farmer-1",
		Name:     "Broken field",
		Geometry: json.RawMessage(`{"type": "Point", "coordinates": [36.8, -1.3]}`),
	}

	err := service.CreateArea(ctx, area)

	var invalid *geometry.InvalidGeometryError
	require.ErrorAs(t, err, &invalid)
}

func TestDeactivateArea(t *testing.T) {
	service, repoMock := newTestAreaService(t)
	ctx := context.Background()
	areaID := uuid.New()

	repoMock.EXPECT().Deactivate(ctx, areaID).Return(nil)

	require.NoError(t, service.DeactivateArea(ctx, areaID))
}
