package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleLivenessProbe(uc LivenessUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := uc.Liveness(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mood": "Ready to rock!",
		})
	}
}
