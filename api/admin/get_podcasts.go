package admin

import (
	"log/slog"
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/admin/views"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/gin-gonic/gin"
)

// GetPodcasts handles GET /admin/podcasts, the full admin listing page.
func GetPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, err := buildTable(c, deps)
		if err != nil {
			renderError(c, err)
			return
		}

		basePath := types.AdminBasePath(deps.Config)
		c.HTML(http.StatusOK, "podcasts_index", views.IndexData{
			Table:         table,
			NewPodcastURL: basePath + "/podcasts/new",
		})
	}
}

// GetPodcastsTable handles GET /admin/podcasts/table, serving just the
// table fragment for in-page refreshes.
func GetPodcastsTable(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, err := buildTable(c, deps)
		if err != nil {
			renderError(c, err)
			return
		}

		// thead is only wanted on full page loads
		if c.Query("include_thead") == "false" {
			table.IncludeHead = false
		}
		if id := c.Query("table_id"); id != "" {
			table.TableID = id
		}

		c.HTML(http.StatusOK, "podcasts_table", table)
	}
}

func buildTable(c *gin.Context, deps *types.Dependencies) (views.TableData, error) {
	page := types.ParsePageQuery(c, deps.Config.Admin.PerPage)

	list, page, err := deps.PodcastService.List(c.Request.Context(), page)
	if err != nil {
		return views.TableData{}, err
	}

	basePath := types.AdminBasePath(deps.Config)
	rows := make([]views.PodcastRow, 0, len(list))
	for _, podcast := range list {
		var firstEpisodeID uint
		if podcast.EpisodeCount == 1 {
			first, err := deps.EpisodeService.First(c.Request.Context(), podcast.ID)
			if err != nil {
				// The row falls back to the episode listing link.
				slog.Warn("looking up first episode", "podcast_id", podcast.ID, "error", err)
			} else {
				firstEpisodeID = first.ID
			}
		}
		rows = append(rows, views.NewPodcastRow(podcast, firstEpisodeID, basePath))
	}

	return views.NewTableData(rows, page, basePath, deps.Config.Admin.PaginationWindow), nil
}

func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.String(status, "admin page unavailable")
	_ = c.Error(err)
}
