package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/api"
	"github.com/tharwin-carr/smoothie-me-api2/internal/database"
	"github.com/tharwin-carr/smoothie-me-api2/internal/router"
	"github.com/tharwin-carr/smoothie-me-api2/internal/service"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	smoothieHandler := api.NewSmoothieHandler(service.NewSmoothieService(db))
	favoriteHandler := api.NewFavoriteHandler(service.NewFavoriteService(db))
	engine := router.SetupRouter(db, smoothieHandler, favoriteHandler)

	srv := New("localhost:8080", engine)
	assert.NotNil(t, srv)

	// Health check endpoint comes wired by the router.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
