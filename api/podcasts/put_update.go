package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/gin-gonic/gin"
)

// PutUpdate handles PUT /api/v1/podcasts/:slug
//
//	@Summary		Update a podcast
//	@Description	Replaces the editable fields of an existing podcast
//	@Tags			podcasts
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string					true	"Podcast slug"
//	@Param			podcast	body		types.PodcastRequest	true	"Updated fields"
//	@Success		200		{object}	types.SinglePodcastResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts/{slug} [put]
func PutUpdate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		var req types.PodcastRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		types.ApplyPodcastRequest(&req, podcast)
		if err := deps.PodcastService.Update(c.Request.Context(), podcast); err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      types.FromModelPodcast(podcast),
		})
	}
}
