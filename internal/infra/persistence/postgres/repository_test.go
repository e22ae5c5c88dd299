package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database with the full table set.
// Constraint creation is disabled because sqlite cannot express a foreign key
// against the non-unique resource uuid column; cascade behavior is exercised
// against postgres, not here.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedGateway(t *testing.T, db *gorm.DB) *entity.Gateway {
	t.Helper()

	gateway := entity.NewGateway("home", "http://hub.local", "12 Elm St", "24.98", "121.54", true)
	require.NoError(t, NewGatewayRepository(db).Create(context.Background(), gateway))

	return gateway
}

func seedSensorType(t *testing.T, db *gorm.DB, name string) *entity.SensorType {
	t.Helper()

	sensorType := entity.NewSensorType(name)
	require.NoError(t, NewSensorTypeRepository(db).Create(context.Background(), sensorType))

	return sensorType
}

func seedResource(t *testing.T, db *gorm.DB, uuid string, gatewayID, sensorTypeID int64) *entity.Resource {
	t.Helper()

	status := true
	resource := entity.NewResource(uuid, sensorTypeID, "/device/0", &status)
	resource.GatewayID = gatewayID
	require.NoError(t, NewResourceRepository(db).Create(context.Background(), resource))

	return resource
}

func TestGatewayRepository_CreateAssignsIDAndKeepsTimestamp(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	gateway := entity.NewGateway("home", "http://hub.local", "12 Elm St", "24.98", "121.54", true)
	stamped := gateway.CreatedAt

	require.NoError(t, NewGatewayRepository(db).Create(ctx, gateway))
	assert.NotZero(t, gateway.ID)
	assert.WithinDuration(t, stamped, gateway.CreatedAt, time.Second)

	found, err := NewGatewayRepository(db).FindByID(ctx, gateway.ID)
	require.NoError(t, err)
	assert.Equal(t, "home", found.Name)
	assert.WithinDuration(t, stamped, found.CreatedAt, time.Second)
}

func TestGatewayRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewGatewayRepository(db).FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrGatewayNotFound)
}

func TestGatewayRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)

	repo := NewGatewayRepository(db)
	require.NoError(t, repo.UpdateStatus(ctx, gateway.ID, false))

	found, err := repo.FindByID(ctx, gateway.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Status)
	assert.False(t, *found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 9999, true), repository.ErrGatewayNotFound)
}

func TestGatewayRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)

	repo := NewGatewayRepository(db)
	require.NoError(t, repo.Delete(ctx, gateway.ID))

	_, err := repo.FindByID(ctx, gateway.ID)
	assert.ErrorIs(t, err, repository.ErrGatewayNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, gateway.ID), repository.ErrGatewayNotFound)
}

func TestUserRepository_CreateAndFindByUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)

	user := entity.NewUser("admin", "secret-hash", gateway.ID)
	require.NoError(t, NewUserRepository(db).Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := NewUserRepository(db).FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.NotNil(t, found.Gateway)
	assert.Equal(t, gateway.ID, found.Gateway.ID)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewUserRepository(db).FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSensorTypeRepository_FindByTypeAndList(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seedSensorType(t, db, "fan")
	seedSensorType(t, db, "temperature")

	repo := NewSensorTypeRepository(db)

	found, err := repo.FindByType(ctx, "temperature")
	require.NoError(t, err)
	assert.Equal(t, "temperature", found.Type)

	_, err = repo.FindByType(ctx, "teleporter")
	assert.ErrorIs(t, err, repository.ErrSensorTypeNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResourceRepository_FindByUUIDAndGateway(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)
	sensorType := seedSensorType(t, db, "fan")

	uuid := strings.Repeat("a", 40)
	seedResource(t, db, uuid, gateway.ID, sensorType.ID)

	found, err := NewResourceRepository(db).FindByUUIDAndGateway(ctx, uuid, gateway.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid, found.UUID)
	require.NotNil(t, found.SensorType)
	assert.Equal(t, "fan", found.SensorType.Type)

	_, err = NewResourceRepository(db).FindByUUIDAndGateway(ctx, uuid, gateway.ID+1)
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}

func TestResourceRepository_ListByGateway(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)
	sensorType := seedSensorType(t, db, "fan")

	seedResource(t, db, strings.Repeat("a", 40), gateway.ID, sensorType.ID)
	seedResource(t, db, strings.Repeat("b", 40), gateway.ID, sensorType.ID)

	resources, err := NewResourceRepository(db).ListByGateway(ctx, gateway.ID)
	require.NoError(t, err)
	assert.Len(t, resources, 2)

	none, err := NewResourceRepository(db).ListByGateway(ctx, gateway.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFanRepository_LatestReturnsNewestWithJoins(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)
	sensorType := seedSensorType(t, db, "fan")

	uuid := strings.Repeat("a", 40)
	seedResource(t, db, uuid, gateway.ID, sensorType.ID)

	repo := NewFanRepository(db)
	off, on := false, true

	first := entity.NewFan(uuid, &off, gateway.ID)
	require.NoError(t, repo.Create(ctx, first))
	second := entity.NewFan(uuid, &on, gateway.ID)
	require.NoError(t, repo.Create(ctx, second))

	latest, err := repo.Latest(ctx, uuid, gateway.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	require.NotNil(t, latest.Status)
	assert.True(t, *latest.Status)

	require.NotNil(t, latest.Gateway)
	assert.Equal(t, gateway.ID, latest.Gateway.ID)
	require.NotNil(t, latest.Resource)
	require.NotNil(t, latest.Resource.SensorType)
	assert.Equal(t, "fan", latest.Resource.SensorType.Type)
}

func TestFanRepository_Latest_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewFanRepository(db).Latest(context.Background(), strings.Repeat("a", 40), 1)
	assert.ErrorIs(t, err, repository.ErrReadingNotFound)
}

func TestTemperatureRepository_ListByGatewayHonorsLimit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	gateway := seedGateway(t, db)
	sensorType := seedSensorType(t, db, "temperature")

	uuid := strings.Repeat("b", 40)
	seedResource(t, db, uuid, gateway.ID, sensorType.ID)

	repo := NewTemperatureRepository(db)
	for _, degrees := range []float64{20.5, 21.0, 21.5} {
		value := degrees
		reading := entity.NewTemperature(uuid, &value, "celsius", "-40,125", gateway.ID)
		require.NoError(t, repo.Create(ctx, reading))
	}

	limited, err := repo.ListByGateway(ctx, gateway.ID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	// Newest first.
	require.NotNil(t, limited[0].Temperature)
	assert.Equal(t, 21.5, *limited[0].Temperature)

	all, err := repo.ListByGateway(ctx, gateway.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEventLogRepository_RoundTripsJSONPayload(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	code := int64(200)
	event := entity.NewEventLog("device", map[string]any{
		"action":  "reboot",
		"retries": float64(2),
	}, &code)

	repo := NewEventLogRepository(db)
	require.NoError(t, repo.Create(ctx, event))
	assert.NotZero(t, event.ID)

	events, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	stored := events[0]
	assert.Equal(t, "device", stored.Type)
	assert.Equal(t, map[string]any{
		"action":  "reboot",
		"retries": float64(2),
	}, stored.Data)
	require.NotNil(t, stored.ResponseCode)
	assert.Equal(t, int64(200), *stored.ResponseCode)
}

func TestEventLogRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventLogRepository(db)

	require.NoError(t, repo.Create(ctx, entity.NewEventLog("first", nil, nil)))
	require.NoError(t, repo.Create(ctx, entity.NewEventLog("second", nil, nil)))

	events, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "second", events[0].Type)
	assert.Nil(t, events[0].Data)
}
