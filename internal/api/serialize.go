package api

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

// sanitizer neutralizes script-executing markup in stored text before
// it goes on the wire. Benign markup such as <strong> passes through.
// Sanitization happens on output only; rows keep the original text.
var sanitizer = bluemonday.UGCPolicy()

func sanitize(s string) string {
	return sanitizer.Sanitize(s)
}

// SmoothieResponse is the wire representation of a smoothie. Field
// names match the historical API, misspelling included.
type SmoothieResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Fruit      string `json:"fruit"`
	Vegetables string `json:"vegetables"`
	NutsSeeds  string `json:"nutsSeeds"`
	Liquids    string `json:"liquids"`
	Powders    string `json:"powders"`
	Sweetners  string `json:"sweetners"`
	Other      string `json:"other"`
}

// FavoriteResponse is the wire representation of a favorite merged with
// its referenced smoothie. favorite_id names the referenced smoothie;
// id is the favorite row itself.
type FavoriteResponse struct {
	ID                 string `json:"id"`
	FavoriteID         string `json:"favorite_id"`
	FavoriteTitle      string `json:"favorite_title"`
	FavoriteFruit      string `json:"favorite_fruit"`
	FavoriteVegetables string `json:"favorite_vegetables"`
	FavoriteNutsSeeds  string `json:"favorite_nutsseeds"`
	FavoriteLiquids    string `json:"favorite_liquids"`
	FavoritePowders    string `json:"favorite_powders"`
	FavoriteSweetners  string `json:"favorite_sweetners"`
	FavoriteOther      string `json:"favorite_other"`
}

func serializeSmoothie(s *model.Smoothie) SmoothieResponse {
	return SmoothieResponse{
		ID:         s.ID.String(),
		Title:      sanitize(s.Title),
		Fruit:      sanitize(s.Fruit),
		Vegetables: sanitize(s.Vegetables),
		NutsSeeds:  sanitize(s.NutsSeeds),
		Liquids:    sanitize(s.Liquids),
		Powders:    sanitize(s.Powders),
		Sweetners:  sanitize(s.Sweetners),
		Other:      sanitize(s.Other),
	}
}

func serializeFavorite(f *model.FavoriteDetail) FavoriteResponse {
	return FavoriteResponse{
		ID:                 f.ID.String(),
		FavoriteID:         f.SmoothieID.String(),
		FavoriteTitle:      sanitize(f.Title),
		FavoriteFruit:      sanitize(f.Fruit),
		FavoriteVegetables: sanitize(f.Vegetables),
		FavoriteNutsSeeds:  sanitize(f.NutsSeeds),
		FavoriteLiquids:    sanitize(f.Liquids),
		FavoritePowders:    sanitize(f.Powders),
		FavoriteSweetners:  sanitize(f.Sweetners),
		FavoriteOther:      sanitize(f.Other),
	}
}
