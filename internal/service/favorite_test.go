package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

func TestListFavoritesMergesSmoothieFields(t *testing.T) {
	db := setupTestDB(t)
	smoothies := NewSmoothieService(db)
	favorites := NewFavoriteService(db)
	ctx := context.Background()

	smoothie, err := smoothies.CreateSmoothie(ctx, &model.Smoothie{
		Title:     "Green Machine",
		Fruit:     "banana",
		NutsSeeds: "chia seeds",
		Sweetners: "honey",
	})
	require.NoError(t, err)

	created, err := favorites.CreateFavorite(ctx, smoothie.ID)
	require.NoError(t, err)

	listed, err := favorites.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, smoothie.ID, listed[0].SmoothieID)
	assert.Equal(t, "Green Machine", listed[0].Title)
	assert.Equal(t, "chia seeds", listed[0].NutsSeeds)
	assert.Equal(t, "honey", listed[0].Sweetners)
}

func TestListFavoritesExcludesDanglingReferences(t *testing.T) {
	db := setupTestDB(t)
	favorites := NewFavoriteService(db)
	ctx := context.Background()

	// Insert directly so the foreign key is not enforced; the inner
	// join must drop the row regardless.
	dangling := model.Favorite{SmoothieID: uuid.New()}
	require.NoError(t, db.Create(&dangling).Error)

	listed, err := favorites.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	detail, err := favorites.GetFavorite(ctx, dangling.ID)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetFavoriteAbsentIsNotAnError(t *testing.T) {
	favorites := NewFavoriteService(setupTestDB(t))

	detail, err := favorites.GetFavorite(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestUpdateFavoriteRepointsReference(t *testing.T) {
	db := setupTestDB(t)
	smoothies := NewSmoothieService(db)
	favorites := NewFavoriteService(db)
	ctx := context.Background()

	first, err := smoothies.CreateSmoothie(ctx, &model.Smoothie{Title: "First"})
	require.NoError(t, err)
	second, err := smoothies.CreateSmoothie(ctx, &model.Smoothie{Title: "Second"})
	require.NoError(t, err)

	created, err := favorites.CreateFavorite(ctx, first.ID)
	require.NoError(t, err)

	affected, err := favorites.UpdateFavorite(ctx, created.ID, map[string]interface{}{"smoothie_id": second.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	detail, err := favorites.GetFavorite(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Second", detail.Title)
}

func TestDeleteFavoriteReportsAffectedRows(t *testing.T) {
	db := setupTestDB(t)
	smoothies := NewSmoothieService(db)
	favorites := NewFavoriteService(db)
	ctx := context.Background()

	smoothie, err := smoothies.CreateSmoothie(ctx, &model.Smoothie{Title: "Kept"})
	require.NoError(t, err)
	created, err := favorites.CreateFavorite(ctx, smoothie.ID)
	require.NoError(t, err)

	affected, err := favorites.DeleteFavorite(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// The referenced smoothie survives.
	kept, err := smoothies.GetSmoothie(ctx, smoothie.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
