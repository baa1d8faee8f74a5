package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error ErrorMessage `json:"error"`
}

// ErrorMessage carries the human-readable failure description.
type ErrorMessage struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: ErrorMessage{Message: message}})
}

// respondStoreError logs the underlying store failure and answers with
// a generic 500. Store errors are never retried or interpreted here.
func respondStoreError(c *gin.Context, message string, err error) {
	log.Printf("%s: %v", message, err)
	respondError(c, http.StatusInternalServerError, message)
}
