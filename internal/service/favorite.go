package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

// favoriteColumns selects the favorite row merged with its referenced
// smoothie. The inner join drops favorites whose reference no longer
// resolves.
const favoriteColumns = "favorites.id AS id, favorites.smoothie_id AS smoothie_id, " +
	"smoothies.title, smoothies.fruit, smoothies.vegetables, smoothies.nuts_seeds, " +
	"smoothies.liquids, smoothies.powders, smoothies.sweetners, smoothies.other"

// FavoriteService handles favorite persistence. Reads are join-backed;
// the favorites table itself stores only the reference.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// ListFavorites returns one merged row per favorite that references an
// existing smoothie.
func (s *FavoriteService) ListFavorites(ctx context.Context) ([]model.FavoriteDetail, error) {
	var favorites []model.FavoriteDetail
	err := s.db.WithContext(ctx).
		Table("favorites").
		Select(favoriteColumns).
		Joins("INNER JOIN smoothies ON smoothies.id = favorites.smoothie_id").
		Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// CreateFavorite inserts a bare reference row. It does not verify the
// referenced smoothie exists; the store's foreign key constraint rejects
// a dangling reference.
func (s *FavoriteService) CreateFavorite(ctx context.Context, smoothieID uuid.UUID) (*model.Favorite, error) {
	favorite := model.Favorite{SmoothieID: smoothieID}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// GetFavorite retrieves the merged row for the favorite with the given
// primary key, or (nil, nil) when no such favorite exists.
func (s *FavoriteService) GetFavorite(ctx context.Context, id uuid.UUID) (*model.FavoriteDetail, error) {
	var favorites []model.FavoriteDetail
	err := s.db.WithContext(ctx).
		Table("favorites").
		Select(favoriteColumns).
		Joins("INNER JOIN smoothies ON smoothies.id = favorites.smoothie_id").
		Where("favorites.id = ?", id).
		Limit(1).
		Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, nil
	}
	return &favorites[0], nil
}

// UpdateFavorite applies the given partial column mapping to the row
// matching id and returns the number of rows affected.
func (s *FavoriteService) UpdateFavorite(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Favorite{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteFavorite removes the row matching id and returns the number of
// rows affected.
func (s *FavoriteService) DeleteFavorite(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Favorite{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
