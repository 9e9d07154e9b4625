package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/gin-gonic/gin"
)

// PostEpisode handles POST /api/v1/podcasts/:slug/episodes
//
//	@Summary		Create an episode
//	@Description	Adds an episode to a podcast. Episodes without a published_at stay drafts.
//	@Tags			podcasts
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string				true	"Podcast slug"
//	@Param			episode	body		types.EpisodeRequest	true	"Episode to create"
//	@Success		201		{object}	types.SingleEpisodeResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts/{slug}/episodes [post]
func PostEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		var req types.EpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode := &models.Episode{PodcastID: podcast.ID}
		types.ApplyEpisodeRequest(&req, episode)

		if err := deps.EpisodeService.Create(c.Request.Context(), episode); err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episode:      types.FromModelEpisode(episode),
		})
	}
}
