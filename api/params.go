package api

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/models"
)

// pageIdParam reads a positive integer path parameter. Pages answer a malformed id with the
// not found page, like an unknown one.
func pageIdParam(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		renderNotFound(c)
		return 0, false
	}
	return id, true
}

// idParam is the JSON counterpart of pageIdParam.
func idParam(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(models.BadParameterError, "invalid %s %q", param, c.Param(param))
	}
	return id, nil
}
