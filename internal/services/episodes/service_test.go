package episodes

import (
	"context"
	"testing"
	"time"

	"github.com/castkeep/castkeep/internal/database"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/castkeep/castkeep/internal/services/podcasts"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/castkeep/castkeep/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Podcast{}, &models.Episode{}))

	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

func newTestService(t *testing.T) (*Service, *models.Podcast, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	podcastRepo := podcasts.NewRepository(db)

	podcast := &models.Podcast{Title: "Fixture Cast", Slug: "fixture-cast"}
	require.NoError(t, podcastRepo.CreatePodcast(context.Background(), podcast))

	return NewService(NewRepository(db), podcastRepo), podcast, db
}

func publishedAt(offset time.Duration) *time.Time {
	ts := time.Now().UTC().Add(offset)
	return &ts
}

func TestCreateEpisodeAssignsGUIDAndRecounts(t *testing.T) {
	svc, podcast, db := newTestService(t)
	ctx := context.Background()

	episode := &models.Episode{
		PodcastID:   podcast.ID,
		Title:       "Pilot",
		Slug:        "pilot",
		AudioURL:    "https://cdn.example.com/pilot.mp3",
		PublishedAt: publishedAt(-time.Hour),
	}
	require.NoError(t, svc.Create(ctx, episode))
	assert.NotEmpty(t, episode.GUID)

	var got models.Podcast
	require.NoError(t, db.First(&got, podcast.ID).Error)
	assert.Equal(t, 1, got.EpisodeCount)
}

func TestCreateEpisodeValidation(t *testing.T) {
	svc, podcast, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		episode *models.Episode
	}{
		{"missing podcast", &models.Episode{Title: "T", AudioURL: "u"}},
		{"missing title", &models.Episode{PodcastID: podcast.ID, AudioURL: "u"}},
		{"missing audio url", &models.Episode{PodcastID: podcast.ID, Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.episode)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeMissingField, appErr.Code)
		})
	}
}

func TestListPublishedOrdersNewestFirst(t *testing.T) {
	svc, podcast, _ := newTestService(t)
	ctx := context.Background()

	for i, offset := range []time.Duration{-3 * time.Hour, -2 * time.Hour, -time.Hour} {
		require.NoError(t, svc.Create(ctx, &models.Episode{
			PodcastID:   podcast.ID,
			Title:       []string{"Oldest", "Middle", "Newest"}[i],
			Slug:        []string{"oldest", "middle", "newest"}[i],
			AudioURL:    "https://cdn.example.com/ep.mp3",
			PublishedAt: publishedAt(offset),
		}))
	}
	// Drafts and scheduled episodes stay out of listener-facing lists
	require.NoError(t, svc.Create(ctx, &models.Episode{
		PodcastID: podcast.ID, Title: "Draft", Slug: "draft", AudioURL: "u",
	}))
	require.NoError(t, svc.Create(ctx, &models.Episode{
		PodcastID: podcast.ID, Title: "Scheduled", Slug: "scheduled", AudioURL: "u",
		PublishedAt: publishedAt(time.Hour),
	}))

	episodes, page, err := svc.ListPublished(ctx, podcast.ID, pagination.New(1, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, episodes, 3)
	assert.Equal(t, "Newest", episodes[0].Title)
	assert.Equal(t, "Oldest", episodes[2].Title)
}

func TestFirstReturnsOldestPublished(t *testing.T) {
	svc, podcast, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.Episode{
		PodcastID: podcast.ID, Title: "Second", Slug: "second",
		AudioURL: "u", PublishedAt: publishedAt(-time.Hour),
	}))
	require.NoError(t, svc.Create(ctx, &models.Episode{
		PodcastID: podcast.ID, Title: "First", Slug: "first",
		AudioURL: "u", PublishedAt: publishedAt(-2 * time.Hour),
	}))

	first, err := svc.First(ctx, podcast.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", first.Title)
}

func TestFirstNotFoundWhenNoPublishedEpisodes(t *testing.T) {
	svc, podcast, _ := newTestService(t)

	_, err := svc.First(context.Background(), podcast.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteEpisodeRecounts(t *testing.T) {
	svc, podcast, db := newTestService(t)
	ctx := context.Background()

	episode := &models.Episode{
		PodcastID: podcast.ID, Title: "Ephemeral", Slug: "ephemeral",
		AudioURL: "u", PublishedAt: publishedAt(-time.Hour),
	}
	require.NoError(t, svc.Create(ctx, episode))
	require.NoError(t, svc.Delete(ctx, episode.ID))

	var got models.Podcast
	require.NoError(t, db.First(&got, podcast.ID).Error)
	assert.Zero(t, got.EpisodeCount)
}

func TestLatestLimitsResults(t *testing.T) {
	svc, podcast, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Create(ctx, &models.Episode{
			PodcastID: podcast.ID,
			Title:     "Episode", Slug: podcasts.Slugify("ep-" + string(rune('a'+i))),
			AudioURL:    "u",
			PublishedAt: publishedAt(-time.Duration(i+1) * time.Hour),
		}))
	}

	latest, err := svc.Latest(ctx, podcast.ID, 3)
	require.NoError(t, err)
	assert.Len(t, latest, 3)
}
