package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castkeep/castkeep/pkg/config"
	apperrors "github.com/castkeep/castkeep/pkg/errors"
	"github.com/castkeep/castkeep/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint.
// Returns the parsed value and sends an error response if parsing fails.
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// ParsePageQuery reads page/per_page query parameters into a clamped Page
func ParsePageQuery(c *gin.Context, defaultPerPage int) pagination.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	return pagination.New(page, perPage, 0)
}

// BindJSONOrError attempts to bind the JSON request body to target.
// Returns false and sends an error response if binding fails.
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// RespondError maps an error to an HTTP response, honoring structured
// AppError codes and falling back to a 500.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.GetHTTPCode(), ErrorResponse{
			Status:  StatusError,
			Message: appErr.Message,
			Error:   string(appErr.Code),
			Details: appErr.Details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: "Internal server error",
		Details: err.Error(),
	})
}

// AdminBasePath returns the configured admin URL prefix
func AdminBasePath(cfg *config.Config) string {
	if cfg == nil || cfg.Admin.BasePath == "" {
		return "/admin"
	}
	return cfg.Admin.BasePath
}
