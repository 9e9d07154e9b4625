package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// GetPodcast handles GET /api/v1/podcasts/:slug
//
//	@Summary		Get a podcast
//	@Description	Returns a single podcast by its slug
//	@Tags			podcasts
//	@Produce		json
//	@Param			slug	path		string	true	"Podcast slug"
//	@Success		200		{object}	types.SinglePodcastResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts/{slug} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      types.FromModelPodcast(podcast),
		})
	}
}
