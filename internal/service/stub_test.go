package service

import (
	"context"
	"time"

	"taskdeck/internal/domain"
)

// in-memory stores backing the service tests

type memUserStore struct {
	seq   int64
	users map[int64]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*domain.User)}
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) Create(_ context.Context, u *domain.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	s.seq++
	u.ID = s.seq
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id int64) error {
	delete(s.users, id)
	return nil
}

type memTaskStore struct {
	seq   int64
	tasks map[int64]*domain.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[int64]*domain.Task)}
}

func (s *memTaskStore) ListByUser(_ context.Context, userID int64) ([]*domain.Task, error) {
	var res []*domain.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			cp := *t
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (s *memTaskStore) Create(_ context.Context, t *domain.Task) error {
	s.seq++
	t.ID = s.seq
	t.CreatedAt = time.Now()
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *memTaskStore) SetCompleted(_ context.Context, userID, id int64, completed bool) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return domain.ErrTaskNotFound
	}
	t.Completed = completed
	return nil
}

func (s *memTaskStore) Delete(_ context.Context, userID, id int64) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *memTaskStore) DeleteAllForUser(_ context.Context, userID int64) error {
	for id, t := range s.tasks {
		if t.UserID == userID {
			delete(s.tasks, id)
		}
	}
	return nil
}
