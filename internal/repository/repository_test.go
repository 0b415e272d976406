package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test a private in-memory database with the full
// schema migrated. A single connection keeps the memory database alive.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.RentalOrder{},
		&models.OrderItem{},
		&models.TrackingInfo{},
	))
	return db
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Login: "alice", Password: "pw1", Role: models.RoleCustomer, PhoneNum: "555-1111"}
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.ExistsByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err := repo.CredentialsMatch(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CredentialsMatch(ctx, "alice", "PW1")
	require.NoError(t, err)
	assert.False(t, ok, "password match must be exact")

	hasRole, err := repo.HasRole(ctx, "alice", models.RoleManager)
	require.NoError(t, err)
	assert.False(t, hasRole)

	require.NoError(t, repo.UpdateRole(ctx, "alice", models.RoleManager))
	require.NoError(t, repo.UpdateOverdueCount(ctx, "alice", 3))
	require.NoError(t, repo.UpdateFavGames(ctx, "alice", "Starfall Odyssey"))

	got, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)
	assert.Equal(t, 3, got.NumOverDueGames)
	require.NotNil(t, got.FavGames)
	assert.Equal(t, "Starfall Odyssey", *got.FavGames)

	_, err = repo.GetByLogin(ctx, "bob")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCatalogRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	games := []models.Game{
		{GameID: "g1", GameName: "Alpha", Genre: "RPG", Price: 20},
		{GameID: "g2", GameName: "Beta", Genre: "Racing", Price: 5},
		{GameID: "g3", GameName: "Gamma", Genre: "RPG", Price: 12},
	}
	require.NoError(t, db.Create(&games).Error)

	byGenre, err := repo.ListByGenre(ctx, "RPG")
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	cheap, err := repo.ListMaxPrice(ctx, 12)
	require.NoError(t, err)
	assert.Len(t, cheap, 2)

	asc, err := repo.ListByPrice(ctx, true)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "g2", asc[0].GameID)
	assert.Equal(t, "g1", asc[2].GameID)

	desc, err := repo.ListByPrice(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "g1", desc[0].GameID)

	require.NoError(t, repo.UpdatePrice(ctx, "g2", 6.5))
	got, err := repo.GetByID(ctx, "g2")
	require.NoError(t, err)
	assert.InDelta(t, 6.5, got.Price, 1e-9)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestOrderRepository_HistoryAndTotals(t *testing.T) {
	db := openTestDB(t)
	orders := repository.NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Game{GameID: "g1", GameName: "Alpha", Genre: "RPG", Price: 10}).Error)
	require.NoError(t, db.Create(&models.Game{GameID: "g2", GameName: "Beta", Genre: "Racing", Price: 5}).Error)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"gamerentalorder1001", "gamerentalorder1002", "gamerentalorder1003"} {
		order := &models.RentalOrder{
			RentalOrderID:  id,
			Login:          "alice",
			OrderTimestamp: base.AddDate(0, 0, i),
			DueDate:        base.AddDate(0, 0, i+7),
		}
		require.NoError(t, orders.Create(ctx, order))
		require.NoError(t, orders.AddItem(ctx, &models.OrderItem{RentalOrderID: id, GameID: "g1", UnitsOrdered: 1}))
	}

	exists, err := orders.ExistsByID(ctx, "gamerentalorder1001")
	require.NoError(t, err)
	assert.True(t, exists)

	history, err := orders.ListByLogin(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "gamerentalorder1001", history[0].RentalOrderID, "full history is oldest first")
	assert.Equal(t, "Alpha", history[0].GameName)

	recent, err := orders.ListRecentByLogin(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "gamerentalorder1003", recent[0].RentalOrderID, "recent history is newest first")

	require.NoError(t, orders.AddItem(ctx, &models.OrderItem{RentalOrderID: "gamerentalorder1001", GameID: "g2", UnitsOrdered: 2}))
	items, err := orders.ListItems(ctx, "gamerentalorder1001")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, orders.FinalizeTotals(ctx, "gamerentalorder1001", 3, 20))
	got, err := orders.GetByID(ctx, "gamerentalorder1001")
	require.NoError(t, err)
	assert.Equal(t, 3, got.NoOfGames)
	assert.InDelta(t, 20, got.TotalPrice, 1e-9)
}

func TestOrderRepository_GetDetail(t *testing.T) {
	db := openTestDB(t)
	orders := repository.NewOrderRepository(db)
	tracking := repository.NewTrackingRepository(db)
	ctx := context.Background()

	require.NoError(t, orders.Create(ctx, &models.RentalOrder{RentalOrderID: "gamerentalorder1001", Login: "alice"}))
	require.NoError(t, tracking.Create(ctx, &models.TrackingInfo{
		TrackingID:    "trackingid2001",
		RentalOrderID: "gamerentalorder1001",
		Status:        models.TrackingStatusProcessing,
	}))

	detail, err := orders.GetDetail(ctx, "gamerentalorder1001")
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Order.Login)
	assert.Equal(t, "trackingid2001", detail.Tracking.TrackingID)

	_, err = orders.GetDetail(ctx, "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestTrackingRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewTrackingRepository(db)
	ctx := context.Background()

	info := &models.TrackingInfo{
		TrackingID:    "trackingid2001",
		RentalOrderID: "gamerentalorder1001",
		Status:        models.TrackingStatusProcessing,
	}
	require.NoError(t, repo.Create(ctx, info))

	exists, err := repo.ExistsByID(ctx, "trackingid2001")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetForOrder(ctx, "trackingid2001", "gamerentalorder1001")
	require.NoError(t, err)
	assert.Equal(t, models.TrackingStatusProcessing, got.Status)

	// The pair must match; a right id with the wrong order is a miss.
	_, err = repo.GetForOrder(ctx, "trackingid2001", "gamerentalorder9999")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	got.Status = "Shipped"
	got.CurrentLocation = "Riverside, CA"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, "trackingid2001")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, "Riverside, CA", updated.CurrentLocation)
}
