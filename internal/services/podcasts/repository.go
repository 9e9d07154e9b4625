package podcasts

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

// Ensure Repository implements PodcastRepository interface
var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePodcast creates a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("podcast", podcast.Slug)
		}
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// UpdatePodcast updates an existing podcast
func (r *Repository) UpdatePodcast(ctx context.Context, podcast *models.Podcast) error {
	result := r.db.WithContext(ctx).Save(podcast)
	if result.Error != nil {
		return fmt.Errorf("updating podcast: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("podcast", podcast.ID)
	}
	return nil
}

// DeletePodcast soft-deletes a podcast and its episodes
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Podcast{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting podcast: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("podcast", id)
		}
		if err := tx.Where("podcast_id = ?", id).Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("deleting podcast episodes: %w", err)
		}
		return nil
	})
}

// GetPodcastByID retrieves a podcast by its database ID
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("podcast", id)
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// GetPodcastBySlug retrieves a podcast by its slug
func (r *Repository) GetPodcastBySlug(ctx context.Context, slug string) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("podcast", slug)
		}
		return nil, fmt.Errorf("getting podcast by slug: %w", err)
	}
	return &podcast, nil
}

// ListPodcasts returns one page of podcasts ordered by title, plus the total count
func (r *Repository) ListPodcasts(ctx context.Context, page pagination.Page) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Podcast{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	if err := query.
		Order("title COLLATE NOCASE ASC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}

	return podcasts, total, nil
}

// SearchPodcasts searches podcasts by title or author name
func (r *Repository) SearchPodcasts(ctx context.Context, query string, limit int) ([]models.Podcast, error) {
	var podcasts []models.Podcast

	searchPattern := "%" + query + "%"

	if err := r.db.WithContext(ctx).
		Where("title LIKE ? OR author_name LIKE ?", searchPattern, searchPattern).
		Order("episode_count DESC").
		Limit(limit).
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("searching podcasts: %w", err)
	}

	return podcasts, nil
}

// RecountEpisodes recomputes the denormalized episode_count column from the
// episodes table, counting only published episodes.
func (r *Repository) RecountEpisodes(ctx context.Context, podcastID uint) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("id = ?", podcastID).
		Update("episode_count", r.db.Model(&models.Episode{}).
			Select("COUNT(*)").
			Where("podcast_id = ? AND deleted_at IS NULL AND published_at IS NOT NULL AND published_at <= ?", podcastID, now),
		).Error
	if err != nil {
		return fmt.Errorf("recounting episodes for podcast %d: %w", podcastID, err)
	}
	return nil
}

// isUniqueViolation reports whether the error came from a unique constraint.
// The sqlite driver does not map these onto gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
