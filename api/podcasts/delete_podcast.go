package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// DeletePodcast handles DELETE /api/v1/podcasts/:slug
//
//	@Summary		Delete a podcast
//	@Description	Deletes a podcast together with all of its episodes
//	@Tags			podcasts
//	@Produce		json
//	@Param			slug	path		string	true	"Podcast slug"
//	@Success		200		{object}	types.BaseResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts/{slug} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		if err := deps.PodcastService.Delete(c.Request.Context(), podcast.ID); err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Podcast deleted",
		})
	}
}
