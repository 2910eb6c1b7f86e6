package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskdeck/internal/domain"
	"taskdeck/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), userID)
	if err != nil {
		logger.Error("list tasks failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

type CreateTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task description is required"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), userID, req.Task)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDescription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task description is required"})
			return
		}
		logger.Error("create task failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "completed flag is required"})
		return
	}

	if err := h.Tasks.SetCompleted(c.Request.Context(), userID, id, *req.Completed); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("update task failed", "error", err, "user_id", userID, "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		logger.Error("delete task failed", "error", err, "user_id", userID, "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}
