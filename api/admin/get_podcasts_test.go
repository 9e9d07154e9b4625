package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/admin/views"
	"github.com/castkeep/castkeep/internal/database"
	"github.com/castkeep/castkeep/internal/models"
	episodessvc "github.com/castkeep/castkeep/internal/services/episodes"
	podcastssvc "github.com/castkeep/castkeep/internal/services/podcasts"
	"github.com/castkeep/castkeep/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) *types.Dependencies {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(&models.Podcast{}, &models.Episode{}))

	podcastService := podcastssvc.NewService(podcastssvc.NewRepository(db.DB))
	episodeService := episodessvc.NewService(episodessvc.NewRepository(db.DB), podcastService)

	renderer, err := views.NewRenderer(250)
	require.NoError(t, err)

	return &types.Dependencies{
		DB:             db,
		PodcastService: podcastService,
		EpisodeService: episodeService,
		Renderer:       renderer,
		Config: &config.Config{
			Admin: config.AdminConfig{PerPage: 25, PaginationWindow: 2, ExcerptLength: 250, BasePath: "/admin"},
		},
	}
}

func newTestRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(deps.Renderer.Templates())
	RegisterRoutes(router.Group("/admin"), deps)
	return router
}

func seedPodcast(t *testing.T, deps *types.Dependencies, title string, episodeCount int) *models.Podcast {
	t.Helper()

	podcast := &models.Podcast{Title: title, Description: "About " + title}
	require.NoError(t, deps.PodcastService.Create(context.Background(), podcast))

	for i := 0; i < episodeCount; i++ {
		published := time.Now().Add(-time.Duration(episodeCount-i) * time.Hour)
		episode := &models.Episode{
			PodcastID:   podcast.ID,
			Title:       "Episode",
			AudioURL:    "https://cdn.example.com/ep.mp3",
			PublishedAt: &published,
		}
		require.NoError(t, deps.EpisodeService.Create(context.Background(), episode))
	}
	return podcast
}

func TestGetPodcastsEmpty(t *testing.T) {
	deps := newTestDeps(t)
	router := newTestRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/podcasts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "None Found")
	assert.Contains(t, body, `id="media-table"`)
	assert.Contains(t, body, "<h1>Podcasts</h1>")
}

func TestGetPodcastsListing(t *testing.T) {
	deps := newTestDeps(t)
	router := newTestRouter(deps)
	seedPodcast(t, deps, "Alpha Waves", 0)
	single := seedPodcast(t, deps, "Morning Signal", 1)
	seedPodcast(t, deps, "Deep Dive Radio", 3)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/podcasts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Equal(t, 3, strings.Count(body, `class="podcast-heading"`))
	assert.Equal(t, 3, strings.Count(body, `class="podcast-row"`))
	assert.NotContains(t, body, "None Found")

	// one episode links straight to that episode's edit page
	first, err := deps.EpisodeService.First(context.Background(), single.ID)
	require.NoError(t, err)
	assert.Contains(t, body, "View First Episode")
	assert.Contains(t, body, fmt.Sprintf("/admin/episodes/%d/edit", first.ID))

	assert.Contains(t, body, "View All 3 Episodes")
}

func TestGetPodcastsTableFragment(t *testing.T) {
	deps := newTestDeps(t)
	router := newTestRouter(deps)
	seedPodcast(t, deps, "Morning Signal", 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/podcasts/table?include_thead=false&table_id=podcast-panel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<thead>")
	assert.Contains(t, body, `id="podcast-panel"`)
	assert.NotContains(t, body, "<h1>")
}

func TestGetPodcastsPagination(t *testing.T) {
	deps := newTestDeps(t)
	deps.Config.Admin.PerPage = 2
	router := newTestRouter(deps)
	seedPodcast(t, deps, "Alpha", 0)
	seedPodcast(t, deps, "Bravo", 0)
	seedPodcast(t, deps, "Charlie", 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/podcasts?page=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="podcast-row"`))
	assert.Contains(t, body, "3&ndash;3 of 3")
}
