package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "__current_user_id"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's id placed in the context
// by AuthRequired. Empty outside authenticated routes.
func currentUserID(c *gin.Context) string {
	if id, ok := c.Get(contextUserKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
