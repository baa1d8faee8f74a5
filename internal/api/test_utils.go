package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
	"github.com/tharwin-carr/smoothie-me-api2/internal/service"
)

// setupTestRouter builds a router over an in-memory sqlite store. The
// pool is pinned to one connection so every query sees the same
// in-memory database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Smoothie{}, &model.Favorite{}))

	smoothieHandler := NewSmoothieHandler(service.NewSmoothieService(db))
	favoriteHandler := NewFavoriteHandler(service.NewFavoriteService(db))

	router := gin.New()
	apiGroup := router.Group("/api")
	smoothieHandler.RegisterRoutes(apiGroup)
	favoriteHandler.RegisterRoutes(apiGroup)

	return router
}

func validSmoothiePayload() map[string]interface{} {
	return map[string]interface{}{
		"title":      "Green Machine",
		"fruit":      "banana, mango",
		"vegetables": "spinach, kale",
		"nutsSeeds":  "chia seeds",
		"liquids":    "almond milk",
		"powders":    "spirulina",
		"sweetners":  "honey",
		"other":      "ice",
	}
}

// doRequest performs a JSON request against the router and returns the
// recorder.
func doRequest(t *testing.T, router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// createTestSmoothie posts the payload and returns the decoded response
// body.
func createTestSmoothie(t *testing.T, router *gin.Engine, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := doRequest(t, router, "POST", "/api/smoothies", payload)
	require.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Contains(t, created, "id")
	return created
}

// createTestFavorite posts a favorite referencing the given smoothie id
// and returns the decoded response body.
func createTestFavorite(t *testing.T, router *gin.Engine, smoothieID string) map[string]interface{} {
	t.Helper()

	w := doRequest(t, router, "POST", "/api/favorites", map[string]interface{}{"favorite_id": smoothieID})
	require.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Contains(t, created, "id")
	return created
}
