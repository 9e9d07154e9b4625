package podcasts

import (
	"net/http"

	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/gin-gonic/gin"
)

// GetList handles GET /api/v1/podcasts
//
//	@Summary		List podcasts
//	@Description	Returns a paginated list of podcasts ordered by title
//	@Tags			podcasts
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			per_page	query		int		false	"Items per page"	default(25)
//	@Param			search		query		string	false	"Search in title and description"
//	@Success		200			{object}	types.PodcastsResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Router			/api/v1/podcasts [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := types.ParsePageQuery(c, deps.Config.Admin.PerPage)

		var list []models.Podcast
		var err error

		if search := c.Query("search"); search != "" {
			list, err = deps.PodcastService.Search(c.Request.Context(), search, page.PerPage)
			page.Total = int64(len(list))
		} else {
			list, page, err = deps.PodcastService.List(c.Request.Context(), page)
		}
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromModelPodcastList(list),
			Page:         page,
		})
	}
}
