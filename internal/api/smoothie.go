package api

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
	"github.com/tharwin-carr/smoothie-me-api2/internal/service"
)

const smoothieContextKey = "smoothie"

// smoothieRequest is the recognized field set for smoothie bodies.
// Pointer fields distinguish absent keys from empty strings; unknown
// keys in the body are dropped by the decoder and never persisted.
type smoothieRequest struct {
	Title      *string `json:"title"`
	Fruit      *string `json:"fruit"`
	Vegetables *string `json:"vegetables"`
	NutsSeeds  *string `json:"nutsSeeds"`
	Liquids    *string `json:"liquids"`
	Powders    *string `json:"powders"`
	Sweetners  *string `json:"sweetners"`
	Other      *string `json:"other"`
}

type requestField struct {
	name  string
	value *string
}

// fields returns name/value pairs in the fixed iteration order used for
// required-field reporting.
func (r *smoothieRequest) fields() []requestField {
	return []requestField{
		{"title", r.Title},
		{"fruit", r.Fruit},
		{"vegetables", r.Vegetables},
		{"nutsSeeds", r.NutsSeeds},
		{"liquids", r.Liquids},
		{"powders", r.Powders},
		{"sweetners", r.Sweetners},
		{"other", r.Other},
	}
}

// updates maps the present fields onto their store columns.
func (r *smoothieRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Fruit != nil {
		updates["fruit"] = *r.Fruit
	}
	if r.Vegetables != nil {
		updates["vegetables"] = *r.Vegetables
	}
	if r.NutsSeeds != nil {
		updates["nuts_seeds"] = *r.NutsSeeds
	}
	if r.Liquids != nil {
		updates["liquids"] = *r.Liquids
	}
	if r.Powders != nil {
		updates["powders"] = *r.Powders
	}
	if r.Sweetners != nil {
		updates["sweetners"] = *r.Sweetners
	}
	if r.Other != nil {
		updates["other"] = *r.Other
	}
	return updates
}

// SmoothieHandler maps the smoothie HTTP surface onto SmoothieService.
type SmoothieHandler struct {
	service *service.SmoothieService
}

// NewSmoothieHandler creates a new SmoothieHandler instance
func NewSmoothieHandler(service *service.SmoothieService) *SmoothieHandler {
	return &SmoothieHandler{service: service}
}

// RegisterRoutes mounts the smoothie routes on the given group.
func (h *SmoothieHandler) RegisterRoutes(router *gin.RouterGroup) {
	smoothies := router.Group("/smoothies")
	{
		smoothies.GET("", h.ListSmoothies)
		smoothies.POST("", h.CreateSmoothie)

		one := smoothies.Group("/:id", h.loadSmoothie)
		{
			one.GET("", h.GetSmoothie)
			one.PATCH("", h.PatchSmoothie)
			one.DELETE("", h.DeleteSmoothie)
		}
	}
}

// loadSmoothie guards every /:id sub-route: it answers 404 when the id
// does not resolve and otherwise stashes the row for GET and PATCH.
// DELETE re-issues its own query by id rather than reusing the row.
func (h *SmoothieHandler) loadSmoothie(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id can never match a row.
		respondError(c, http.StatusNotFound, "Smoothie doesn't exist")
		c.Abort()
		return
	}

	smoothie, err := h.service.GetSmoothie(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Failed to fetch smoothie", err)
		c.Abort()
		return
	}
	if smoothie == nil {
		respondError(c, http.StatusNotFound, "Smoothie doesn't exist")
		c.Abort()
		return
	}

	c.Set(smoothieContextKey, smoothie)
	c.Next()
}

func (h *SmoothieHandler) ListSmoothies(c *gin.Context) {
	smoothies, err := h.service.ListSmoothies(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Failed to fetch smoothies", err)
		return
	}

	response := make([]SmoothieResponse, 0, len(smoothies))
	for i := range smoothies {
		response = append(response, serializeSmoothie(&smoothies[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *SmoothieHandler) CreateSmoothie(c *gin.Context) {
	var req smoothieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	for _, field := range req.fields() {
		if field.value == nil {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field.name))
			return
		}
	}

	smoothie := model.Smoothie{
		Title:      *req.Title,
		Fruit:      *req.Fruit,
		Vegetables: *req.Vegetables,
		NutsSeeds:  *req.NutsSeeds,
		Liquids:    *req.Liquids,
		Powders:    *req.Powders,
		Sweetners:  *req.Sweetners,
		Other:      *req.Other,
	}

	created, err := h.service.CreateSmoothie(c.Request.Context(), &smoothie)
	if err != nil {
		respondStoreError(c, "Failed to create smoothie", err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, created.ID.String()))
	c.JSON(http.StatusCreated, serializeSmoothie(created))
}

func (h *SmoothieHandler) GetSmoothie(c *gin.Context) {
	smoothie := c.MustGet(smoothieContextKey).(*model.Smoothie)
	c.JSON(http.StatusOK, serializeSmoothie(smoothie))
}

func (h *SmoothieHandler) PatchSmoothie(c *gin.Context) {
	var req smoothieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := req.updates()
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "Request body must contain at least one updatable field")
		return
	}

	// The guard confirmed existence; the affected-row count is not
	// reported back.
	id := uuid.MustParse(c.Param("id"))
	if _, err := h.service.UpdateSmoothie(c.Request.Context(), id, updates); err != nil {
		respondStoreError(c, "Failed to update smoothie", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SmoothieHandler) DeleteSmoothie(c *gin.Context) {
	id := uuid.MustParse(c.Param("id"))
	if _, err := h.service.DeleteSmoothie(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Failed to delete smoothie", err)
		return
	}

	c.Status(http.StatusNoContent)
}
