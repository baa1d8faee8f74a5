package api

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
	"github.com/tharwin-carr/smoothie-me-api2/internal/service"
)

const favoriteContextKey = "favorite"

// favoriteRequest is the recognized field set for favorite bodies. A
// favorite stores nothing but its reference, so favorite_id is the only
// accepted key; everything else is dropped.
type favoriteRequest struct {
	FavoriteID *string `json:"favorite_id"`
}

// FavoriteHandler maps the favorite HTTP surface onto FavoriteService.
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler instance
func NewFavoriteHandler(service *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// RegisterRoutes mounts the favorite routes on the given group.
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.CreateFavorite)

		one := favorites.Group("/:id", h.loadFavorite)
		{
			one.GET("", h.GetFavorite)
			one.PATCH("", h.PatchFavorite)
			one.DELETE("", h.DeleteFavorite)
		}
	}
}

// loadFavorite guards every /:id sub-route. The id is the favorite
// row's own primary key.
func (h *FavoriteHandler) loadFavorite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Favorite doesn't exist")
		c.Abort()
		return
	}

	favorite, err := h.service.GetFavorite(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Failed to fetch favorite", err)
		c.Abort()
		return
	}
	if favorite == nil {
		respondError(c, http.StatusNotFound, "Favorite doesn't exist")
		c.Abort()
		return
	}

	c.Set(favoriteContextKey, favorite)
	c.Next()
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.service.ListFavorites(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Failed to fetch favorites", err)
		return
	}

	response := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		response = append(response, serializeFavorite(&favorites[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *FavoriteHandler) CreateFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FavoriteID == nil {
		respondError(c, http.StatusBadRequest, "Missing 'favorite_id' in request body")
		return
	}
	smoothieID, err := uuid.Parse(*req.FavoriteID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid 'favorite_id' in request body")
		return
	}

	created, err := h.service.CreateFavorite(c.Request.Context(), smoothieID)
	if err != nil {
		respondStoreError(c, "Failed to create favorite", err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, created.ID.String()))

	// Serve the merged row when the reference resolves; a store without
	// an enforced foreign key can hold a dangling reference, which
	// serializes with empty descriptive fields.
	detail, err := h.service.GetFavorite(c.Request.Context(), created.ID)
	if err != nil {
		respondStoreError(c, "Failed to fetch favorite", err)
		return
	}
	if detail == nil {
		detail = &model.FavoriteDetail{ID: created.ID, SmoothieID: created.SmoothieID}
	}
	c.JSON(http.StatusCreated, serializeFavorite(detail))
}

func (h *FavoriteHandler) GetFavorite(c *gin.Context) {
	favorite := c.MustGet(favoriteContextKey).(*model.FavoriteDetail)
	c.JSON(http.StatusOK, serializeFavorite(favorite))
}

func (h *FavoriteHandler) PatchFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FavoriteID == nil {
		respondError(c, http.StatusBadRequest, "Request body must contain at least one updatable field")
		return
	}
	smoothieID, err := uuid.Parse(*req.FavoriteID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid 'favorite_id' in request body")
		return
	}

	id := uuid.MustParse(c.Param("id"))
	if _, err := h.service.UpdateFavorite(c.Request.Context(), id, map[string]interface{}{"smoothie_id": smoothieID}); err != nil {
		respondStoreError(c, "Failed to update favorite", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	id := uuid.MustParse(c.Param("id"))
	if _, err := h.service.DeleteFavorite(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Failed to delete favorite", err)
		return
	}

	c.Status(http.StatusNoContent)
}
