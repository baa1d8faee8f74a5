package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Smoothie{}, &model.Favorite{}))
	return db
}

func TestCreateSmoothieAssignsID(t *testing.T) {
	svc := NewSmoothieService(setupTestDB(t))

	created, err := svc.CreateSmoothie(context.Background(), &model.Smoothie{Title: "Green Machine"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestGetSmoothieAbsentIsNotAnError(t *testing.T) {
	svc := NewSmoothieService(setupTestDB(t))

	smoothie, err := svc.GetSmoothie(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, smoothie)
}

func TestListSmoothiesReturnsAllRows(t *testing.T) {
	svc := NewSmoothieService(setupTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.CreateSmoothie(ctx, &model.Smoothie{Title: title})
		require.NoError(t, err)
	}

	smoothies, err := svc.ListSmoothies(ctx)
	require.NoError(t, err)
	assert.Len(t, smoothies, 3)
}

func TestUpdateSmoothieReportsAffectedRows(t *testing.T) {
	svc := NewSmoothieService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateSmoothie(ctx, &model.Smoothie{Title: "Before", Fruit: "banana"})
	require.NoError(t, err)

	affected, err := svc.UpdateSmoothie(ctx, created.ID, map[string]interface{}{"title": "After"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	updated, err := svc.GetSmoothie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "banana", updated.Fruit)

	// No matching row, no error.
	affected, err = svc.UpdateSmoothie(ctx, uuid.New(), map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteSmoothieReportsAffectedRows(t *testing.T) {
	svc := NewSmoothieService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateSmoothie(ctx, &model.Smoothie{Title: "Doomed"})
	require.NoError(t, err)

	affected, err := svc.DeleteSmoothie(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = svc.DeleteSmoothie(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
