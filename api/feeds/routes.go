package feeds

import (
	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public feed routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:slug/feed.xml", GetFeed(deps))
}
