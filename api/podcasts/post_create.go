package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/gin-gonic/gin"
)

// PostCreate handles POST /api/v1/podcasts
//
//	@Summary		Create a podcast
//	@Description	Creates a new podcast, deriving a slug from the title when none is given
//	@Tags			podcasts
//	@Accept			json
//	@Produce		json
//	@Param			podcast	body		types.PodcastRequest	true	"Podcast to create"
//	@Success		201		{object}	types.SinglePodcastResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PodcastRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		podcast := &models.Podcast{}
		types.ApplyPodcastRequest(&req, podcast)

		if err := deps.PodcastService.Create(c.Request.Context(), podcast); err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      types.FromModelPodcast(podcast),
		})
	}
}
