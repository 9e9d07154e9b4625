package podcasts

import (
	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers podcast routes.
// Rate limiting is applied at the route registration level.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetList(deps))
	router.POST("", PostCreate(deps))

	router.GET("/:slug", GetPodcast(deps))
	router.PUT("/:slug", PutUpdate(deps))
	router.DELETE("/:slug", DeletePodcast(deps))

	router.GET("/:slug/episodes", GetEpisodes(deps))
	router.POST("/:slug/episodes", PostEpisode(deps))
}
