package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aminbn12/planiunv/internal/api/middleware"
	"github.com/aminbn12/planiunv/pkg/response"
)

// pathID reads the :id route parameter. A non-numeric id behaves like
// a missing record, so the caller writes its own not-found message.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the authenticated user id set by the auth
// middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Unauthorized(c, "Non authentifié")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		response.Unauthorized(c, "Non authentifié")
		return 0, false
	}
	return id, true
}
