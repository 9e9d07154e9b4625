package podcasts

import (
	"context"

	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/pkg/pagination"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	// Create/Update/Delete
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	UpdatePodcast(ctx context.Context, podcast *models.Podcast) error
	DeletePodcast(ctx context.Context, id uint) error

	// Read
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetPodcastBySlug(ctx context.Context, slug string) (*models.Podcast, error)

	// List
	ListPodcasts(ctx context.Context, page pagination.Page) ([]models.Podcast, int64, error)
	SearchPodcasts(ctx context.Context, query string, limit int) ([]models.Podcast, error)

	// Recount the published episodes behind the denormalized episode_count column
	RecountEpisodes(ctx context.Context, podcastID uint) error
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	Create(ctx context.Context, podcast *models.Podcast) error
	Update(ctx context.Context, podcast *models.Podcast) error
	Delete(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetBySlug(ctx context.Context, slug string) (*models.Podcast, error)

	// List returns one page of podcasts plus the completed page state
	// (total filled in) for pagination controls.
	List(ctx context.Context, page pagination.Page) ([]models.Podcast, pagination.Page, error)
	Search(ctx context.Context, query string, limit int) ([]models.Podcast, error)

	RecountEpisodes(ctx context.Context, podcastID uint) error
}
