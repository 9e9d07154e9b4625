package episodes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/castkeep/castkeep/internal/models"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/castkeep/castkeep/pkg/pagination"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.AlreadyExists("episode", episode.GUID)
		}
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

func (r *Repository) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("episode", episode.ID)
	}
	return nil
}

func (r *Repository) DeleteEpisode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("episode", id)
	}
	return nil
}

func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("episode", id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) GetEpisodeByGUID(ctx context.Context, guid string) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Where("guid = ?", guid).
		First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("episode", guid)
		}
		return nil, fmt.Errorf("getting episode by guid: %w", err)
	}
	return &episode, nil
}

// publishedScope filters to episodes visible to listeners: a publish
// timestamp exists and is not in the future.
func publishedScope(db *gorm.DB) *gorm.DB {
	return db.Where("published_at IS NOT NULL AND published_at <= ?", time.Now().UTC())
}

func (r *Repository) ListPublishedByPodcast(ctx context.Context, podcastID uint, page pagination.Page) ([]models.Episode, int64, error) {
	var episodes []models.Episode
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Scopes(publishedScope).
		Where("podcast_id = ?", podcastID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting episodes: %w", err)
	}

	if err := query.
		Order("published_at DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&episodes).Error; err != nil {
		return nil, 0, fmt.Errorf("listing episodes: %w", err)
	}

	return episodes, total, nil
}

func (r *Repository) FirstPublished(ctx context.Context, podcastID uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Scopes(publishedScope).
		Where("podcast_id = ?", podcastID).
		Order("published_at ASC").
		First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("episode", podcastID)
		}
		return nil, fmt.Errorf("getting first episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) LatestPublished(ctx context.Context, podcastID uint, limit int) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Scopes(publishedScope).
		Where("podcast_id = ?", podcastID).
		Order("published_at DESC").
		Limit(limit).
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing latest episodes: %w", err)
	}
	return episodes, nil
}
