package service

import (
	"context"
	"errors"
	"fmt"

	"taskdeck/internal/domain"
)

// UserStore is the slice of the user repository the auth service
// needs. The pgx implementation lives in internal/repository.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// AuthService owns the account lifecycle: registration, login and
// account deletion.
type AuthService struct {
	users  UserStore
	tasks  TaskStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users UserStore, tasks TaskStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tasks: tasks, hasher: hasher, tokens: tokens}
}

// Register creates an account. The returned user carries the hash
// internally but it is never serialized.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token. An unknown
// email and a wrong password are deliberately indistinguishable, but
// a store failure is neither: it propagates as-is so the boundary can
// report a server fault instead of rejecting the credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

func (s *AuthService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// DeleteAccount removes the user and everything they own. Tasks go
// first: the store has no referential integrity, and a crash between
// the two steps must not leave orphaned tasks behind.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.tasks.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
