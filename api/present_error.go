package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.NotFoundError):
		return http.StatusNotFound
	case errors.Is(err, models.ConflictError):
		return http.StatusConflict
	case errors.Is(err, models.BadParameterError):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// presentError answers with a JSON error and reports it when unexpected. It returns true if
// err was not nil.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(c.Request.Context(), err)
		c.JSON(status, errorResponse{Message: http.StatusText(status)})
		return true
	}

	utils.LoggerFromContext(c.Request.Context()).InfoContext(c.Request.Context(), "client error", "error", err.Error())
	c.JSON(status, errorResponse{
		Message: http.StatusText(status),
		Details: errors.FlattenDetails(err),
	})
	return true
}

// presentErrorPage is the HTML counterpart of presentError: unknown entities render the 404
// page, anything else the 500 page.
func presentErrorPage(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, models.NotFoundError) {
		renderNotFound(c)
		return true
	}
	if errors.Is(err, models.BadParameterError) {
		c.AbortWithStatus(http.StatusBadRequest)
		return true
	}

	utils.LogAndReportSentryError(c.Request.Context(), err)
	renderServerError(c)
	return true
}

func renderNotFound(c *gin.Context) {
	renderPage(c, http.StatusNotFound, pageNotFound, "Page not found", nil)
	c.Abort()
}

func renderServerError(c *gin.Context) {
	renderPage(c, http.StatusInternalServerError, pageServerError, "Server error", nil)
	c.Abort()
}

// logError reports err when it is unexpected, and only logs it otherwise. It is used by form
// posts that answer errors with a flash message.
func logError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	if errorStatus(err) >= http.StatusInternalServerError {
		utils.LogAndReportSentryError(ctx, err)
		return
	}
	utils.LoggerFromContext(ctx).InfoContext(ctx, "form rejected", "error", err.Error())
}
