package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the branding block. Public: the login page already
// needs the app name and favicon.
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.Get()
	if err != nil {
		// Defaults are still usable; serve them instead of failing bootstrap.
		c.JSON(http.StatusOK, gin.H{"settings": settings})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
