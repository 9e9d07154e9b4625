package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Set at build time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary      Service info
// @Description  Returns the service name and build version.
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "castkeep",
			"description": "Podcast CMS admin server",
			"version":     Version,
			"commit":      GitCommit,
			"status":      "running",
		})
	}
}
