package episodes

import (
	"context"
	"log/slog"
	"strings"

	"github.com/castkeep/castkeep/internal/models"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/castkeep/castkeep/pkg/pagination"
	"github.com/google/uuid"
)

type Service struct {
	repository EpisodeRepository
	counter    PodcastCounter
}

// Ensure Service implements EpisodeService interface
var _ EpisodeService = (*Service)(nil)

// NewService builds an episode service. counter may be nil in tests that
// do not care about podcast episode counts.
func NewService(repository EpisodeRepository, counter PodcastCounter) *Service {
	return &Service{repository: repository, counter: counter}
}

// Create validates and stores an episode, assigning a GUID when missing,
// then refreshes the owning podcast's episode count.
func (s *Service) Create(ctx context.Context, episode *models.Episode) error {
	if episode.PodcastID == 0 {
		return apperrors.MissingFieldError("podcast_id")
	}
	if strings.TrimSpace(episode.Title) == "" {
		return apperrors.MissingFieldError("title")
	}
	if strings.TrimSpace(episode.AudioURL) == "" {
		return apperrors.MissingFieldError("audio_url")
	}
	if episode.GUID == "" {
		episode.GUID = uuid.NewString()
	}

	if err := s.repository.CreateEpisode(ctx, episode); err != nil {
		return err
	}

	s.recount(ctx, episode.PodcastID)
	slog.Info("episode created", "id", episode.ID, "podcast_id", episode.PodcastID)
	return nil
}

// Update saves changes to an episode and refreshes the episode count,
// since the publish timestamp may have changed.
func (s *Service) Update(ctx context.Context, episode *models.Episode) error {
	if episode.ID == 0 {
		return apperrors.MissingFieldError("id")
	}
	if strings.TrimSpace(episode.Title) == "" {
		return apperrors.MissingFieldError("title")
	}

	if err := s.repository.UpdateEpisode(ctx, episode); err != nil {
		return err
	}

	s.recount(ctx, episode.PodcastID)
	return nil
}

// Delete removes an episode and refreshes the owning podcast's count
func (s *Service) Delete(ctx context.Context, id uint) error {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteEpisode(ctx, id); err != nil {
		return err
	}

	s.recount(ctx, episode.PodcastID)
	slog.Info("episode deleted", "id", id, "podcast_id", episode.PodcastID)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Episode, error) {
	return s.repository.GetEpisodeByID(ctx, id)
}

func (s *Service) ListPublished(ctx context.Context, podcastID uint, page pagination.Page) ([]models.Episode, pagination.Page, error) {
	episodes, total, err := s.repository.ListPublishedByPodcast(ctx, podcastID, page)
	if err != nil {
		return nil, page, err
	}
	page.Total = total
	return episodes, page, nil
}

func (s *Service) First(ctx context.Context, podcastID uint) (*models.Episode, error) {
	return s.repository.FirstPublished(ctx, podcastID)
}

func (s *Service) Latest(ctx context.Context, podcastID uint, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		limit = pagination.DefaultPerPage
	}
	return s.repository.LatestPublished(ctx, podcastID, limit)
}

// recount is best-effort; a stale count never fails the write that caused it
func (s *Service) recount(ctx context.Context, podcastID uint) {
	if s.counter == nil {
		return
	}
	if err := s.counter.RecountEpisodes(ctx, podcastID); err != nil {
		slog.Warn("failed to recount episodes", "podcast_id", podcastID, "error", err)
	}
}
