package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleHome(c *gin.Context) {
	renderPage(c, http.StatusOK, pageHome, "Fyyur", nil)
}
