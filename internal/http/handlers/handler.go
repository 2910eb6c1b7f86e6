package handlers

import (
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Auth  *service.AuthService
	Tasks *service.TaskService
}

func NewHandler(auth *service.AuthService, tasks *service.TaskService) *Handler {
	return &Handler{Auth: auth, Tasks: tasks}
}

// getUserID reads the user id bound by the auth middleware.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
