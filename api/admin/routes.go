package admin

import (
	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin HTML routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/podcasts", GetPodcasts(deps))
	router.GET("/podcasts/table", GetPodcastsTable(deps))
}
