package types

import (
	"github.com/castkeep/castkeep/internal/admin/views"
	"github.com/castkeep/castkeep/internal/database"
	"github.com/castkeep/castkeep/internal/services/cache"
	"github.com/castkeep/castkeep/internal/services/episodes"
	"github.com/castkeep/castkeep/internal/services/podcasts"
	"github.com/castkeep/castkeep/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	PodcastService podcasts.PodcastService
	EpisodeService episodes.EpisodeService
	Renderer       *views.Renderer
	FeedCache      cache.Cache
	Config         *config.Config
}
