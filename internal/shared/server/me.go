package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/server/middleware"
	"fitcheck-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint to the admin group.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	subject := middleware.AdminSubjectFromContext(c)
	if subject == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"subject": subject})
}
