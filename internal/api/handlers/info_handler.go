package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// InfoHandler serves the liveness probe and the root info endpoint.
type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "Connected",
		"version":   apiVersion,
	})
}

func (h *InfoHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Portfolio Backend API",
		"version": apiVersion,
		"endpoints": gin.H{
			"graphql": "/graphql",
			"health":  "/health",
		},
		"documentation": "https://github.com/Doja-oual/BackendGraphQLPortfolio",
	})
}
