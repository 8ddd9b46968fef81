package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process and database liveness.
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
