package pubapi

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// IdParam reads a positive numeric identifier from the route parameters.
func IdParam(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithDetail(ErrInvalidId, "invalid resource identifier")
	}

	return id, nil
}
