package episodes

import (
	"context"

	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/pkg/pagination"
)

// EpisodeRepository defines the data access interface for episodes
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	UpdateEpisode(ctx context.Context, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, id uint) error

	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	GetEpisodeByGUID(ctx context.Context, guid string) (*models.Episode, error)

	// ListPublishedByPodcast returns published episodes, newest first
	ListPublishedByPodcast(ctx context.Context, podcastID uint, page pagination.Page) ([]models.Episode, int64, error)

	// FirstPublished returns the oldest published episode of a podcast
	FirstPublished(ctx context.Context, podcastID uint) (*models.Episode, error)

	// LatestPublished returns up to limit published episodes, newest first
	LatestPublished(ctx context.Context, podcastID uint, limit int) ([]models.Episode, error)
}

// PodcastCounter is the slice of the podcast service episodes need:
// keeping the denormalized episode count in step with episode changes.
type PodcastCounter interface {
	RecountEpisodes(ctx context.Context, podcastID uint) error
}

// EpisodeService defines the business logic interface for episode operations
type EpisodeService interface {
	Create(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	Delete(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*models.Episode, error)
	ListPublished(ctx context.Context, podcastID uint, page pagination.Page) ([]models.Episode, pagination.Page, error)
	First(ctx context.Context, podcastID uint) (*models.Episode, error)
	Latest(ctx context.Context, podcastID uint, limit int) ([]models.Episode, error)
}
