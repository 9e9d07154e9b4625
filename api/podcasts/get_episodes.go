package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// GetEpisodes handles GET /api/v1/podcasts/:slug/episodes
//
//	@Summary		List published episodes
//	@Description	Returns the published episodes of a podcast, newest first
//	@Tags			podcasts
//	@Produce		json
//	@Param			slug		path		string	true	"Podcast slug"
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			per_page	query		int		false	"Items per page"	default(25)
//	@Success		200			{object}	types.EpisodesResponse
//	@Failure		404			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts/{slug}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		page := types.ParsePageQuery(c, deps.Config.Admin.PerPage)
		list, page, err := deps.EpisodeService.ListPublished(c.Request.Context(), podcast.ID, page)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     types.FromModelEpisodeList(list),
			Page:         page,
		})
	}
}
