package podcasts

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/castkeep/castkeep/internal/models"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/castkeep/castkeep/pkg/pagination"
)

type Service struct {
	repository PodcastRepository
}

// Ensure Service implements PodcastService interface
var _ PodcastService = (*Service)(nil)

func NewService(repository PodcastRepository) *Service {
	return &Service{repository: repository}
}

// Create validates and stores a new podcast, deriving the slug from the
// title when none is given.
func (s *Service) Create(ctx context.Context, podcast *models.Podcast) error {
	if strings.TrimSpace(podcast.Title) == "" {
		return apperrors.MissingFieldError("title")
	}

	if podcast.Slug == "" {
		podcast.Slug = Slugify(podcast.Title)
	} else {
		podcast.Slug = Slugify(podcast.Slug)
	}
	if podcast.Slug == "" {
		return apperrors.ValidationError("slug", "cannot be derived from title")
	}

	if err := s.repository.CreatePodcast(ctx, podcast); err != nil {
		return err
	}

	slog.Info("podcast created", "id", podcast.ID, "slug", podcast.Slug)
	return nil
}

// Update validates and saves changes to an existing podcast
func (s *Service) Update(ctx context.Context, podcast *models.Podcast) error {
	if podcast.ID == 0 {
		return apperrors.MissingFieldError("id")
	}
	if strings.TrimSpace(podcast.Title) == "" {
		return apperrors.MissingFieldError("title")
	}
	if podcast.Slug != "" {
		podcast.Slug = Slugify(podcast.Slug)
	}

	return s.repository.UpdatePodcast(ctx, podcast)
}

// Delete removes a podcast and its episodes
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repository.DeletePodcast(ctx, id); err != nil {
		return err
	}
	slog.Info("podcast deleted", "id", id)
	return nil
}

// GetByID gets a podcast by database ID
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Podcast, error) {
	return s.repository.GetPodcastByID(ctx, id)
}

// GetBySlug gets a podcast by its slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Podcast, error) {
	return s.repository.GetPodcastBySlug(ctx, slug)
}

// List returns one page of podcasts together with the total-aware page state
func (s *Service) List(ctx context.Context, page pagination.Page) ([]models.Podcast, pagination.Page, error) {
	podcasts, total, err := s.repository.ListPodcasts(ctx, page)
	if err != nil {
		return nil, page, err
	}
	page.Total = total
	return podcasts, page, nil
}

// Search finds podcasts matching the query by title or author
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.Podcast, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.MissingFieldError("query")
	}
	if limit <= 0 || limit > pagination.MaxPerPage {
		limit = pagination.DefaultPerPage
	}
	return s.repository.SearchPodcasts(ctx, query, limit)
}

// RecountEpisodes refreshes the stored published-episode count
func (s *Service) RecountEpisodes(ctx context.Context, podcastID uint) error {
	return s.repository.RecountEpisodes(ctx, podcastID)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text and collapses everything that is not a letter or
// digit into single hyphens.
func Slugify(text string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
