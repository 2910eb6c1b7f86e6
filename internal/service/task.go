package service

import (
	"context"
	"strings"

	"taskdeck/internal/domain"
)

// TaskStore is the slice of the task repository the services need.
type TaskStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	SetCompleted(ctx context.Context, userID, id int64, completed bool) error
	Delete(ctx context.Context, userID, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}

// TaskService scopes every operation to the authenticated user. The
// userID always comes from the verified token, never from a request
// payload, so one user can never touch another's tasks.
type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID int64, description string) (*domain.Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.ErrEmptyDescription
	}

	task := &domain.Task{UserID: userID, Description: description}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) SetCompleted(ctx context.Context, userID, taskID int64, completed bool) error {
	return s.tasks.SetCompleted(ctx, userID, taskID, completed)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.tasks.Delete(ctx, userID, taskID)
}
