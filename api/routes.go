package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/castkeep/castkeep/api/admin"
	"github.com/castkeep/castkeep/api/feeds"
	"github.com/castkeep/castkeep/api/health"
	"github.com/castkeep/castkeep/api/podcasts"
	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/api/version"
	_ "github.com/castkeep/castkeep/docs/swagger"
	"github.com/castkeep/castkeep/internal/admin/views"
	"github.com/castkeep/castkeep/internal/services/cache"
	episodesService "github.com/castkeep/castkeep/internal/services/episodes"
	podcastsService "github.com/castkeep/castkeep/internal/services/podcasts"
	"github.com/castkeep/castkeep/pkg/config"
)

// RegisterRoutes registers all routes: the JSON API, the public RSS feeds,
// and the admin HTML views.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Config == nil {
		cfg, err := config.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		deps.Config = cfg
	}

	if err := initializeServices(deps); err != nil {
		return err
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	if deps.DB == nil || deps.DB.DB == nil {
		// Without a database only the health/version/docs surface is served
		return nil
	}

	rl := func(rps, burst int) gin.HandlerFunc {
		if !deps.Config.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	// JSON API
	v1 := engine.Group("/api/v1")
	podcastGroup := v1.Group("/podcasts")
	podcastGroup.Use(rl(deps.Config.RateLimiting.RPS, deps.Config.RateLimiting.Burst))
	podcasts.RegisterRoutes(podcastGroup, deps)

	// Public RSS feeds; generous limits since readers poll aggressively
	feedGroup := engine.Group("/podcasts")
	feedGroup.Use(rl(20, 40))
	feeds.RegisterRoutes(feedGroup, deps)

	// Admin HTML views
	engine.SetHTMLTemplate(deps.Renderer.Templates())
	adminGroup := engine.Group(types.AdminBasePath(deps.Config))
	adminGroup.Use(rl(deps.Config.RateLimiting.RPS, deps.Config.RateLimiting.Burst))
	admin.RegisterRoutes(adminGroup, deps)

	return nil
}

// initializeServices fills in any dependency the caller did not provide
func initializeServices(deps *types.Dependencies) error {
	if deps.Renderer == nil {
		renderer, err := views.NewRenderer(deps.Config.Admin.ExcerptLength)
		if err != nil {
			return fmt.Errorf("failed to build admin renderer: %w", err)
		}
		deps.Renderer = renderer
	}

	if deps.DB == nil || deps.DB.DB == nil {
		return nil
	}

	if deps.PodcastService == nil {
		deps.PodcastService = podcastsService.NewService(podcastsService.NewRepository(deps.DB.DB))
	}

	if deps.EpisodeService == nil {
		deps.EpisodeService = episodesService.NewService(
			episodesService.NewRepository(deps.DB.DB),
			deps.PodcastService,
		)
	}

	if deps.FeedCache == nil {
		deps.FeedCache = cache.NewMemoryCache(deps.Config.Feeds.CacheSizeMB)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
