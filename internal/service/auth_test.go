package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/domain"
)

func newAuthService() (*AuthService, *memUserStore, *memTaskStore) {
	users := newMemUserStore()
	tasks := newMemTaskStore()
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(users, tasks, NewPasswordHasher(), tokens)
	return svc, users, tasks
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("registered user has no id")
	}
	if user.PasswordHash == "pw123" {
		t.Fatal("password stored in plaintext")
	}

	token, err := svc.Login(ctx, "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice@x.com", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "alice@x.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v; want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@x.com", "pw123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v; want ErrInvalidCredentials", err)
	}
}

// downUserStore simulates a store outage on reads.
type downUserStore struct {
	*memUserStore
	err error
}

func (s *downUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, s.err
}

func TestLoginStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	users := &downUserStore{memUserStore: newMemUserStore(), err: storeErr}
	tasks := newMemTaskStore()
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(users, tasks, NewPasswordHasher(), tokens)

	_, err := svc.Login(context.Background(), "alice@x.com", "pw123")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatal("store outage reported as invalid credentials")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("got %v; want the store error propagated", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := svc.Register(ctx, "alice@x.com", "other"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate register: got %v; want ErrEmailTaken", err)
	}

	// the original account still logs in with its own password
	kept, err := users.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("first account gone: %v", err)
	}
	if kept.PasswordHash != first.PasswordHash {
		t.Fatal("first account's hash changed by the failed registration")
	}
	if _, err := svc.Login(ctx, "alice@x.com", "pw123"); err != nil {
		t.Fatalf("first account login broken: %v", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	svc, users, tasks := newAuthService()
	taskSvc := NewTaskService(tasks)
	ctx := context.Background()

	alice, err := svc.Register(ctx, "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	bob, err := svc.Register(ctx, "bob@x.com", "pw456")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	for _, desc := range []string{"buy milk", "walk dog"} {
		if _, err := taskSvc.Create(ctx, alice.ID, desc); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}
	if _, err := taskSvc.Create(ctx, bob.ID, "bob's task"); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := svc.DeleteAccount(ctx, alice.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := users.GetByID(ctx, alice.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("alice still present: %v", err)
	}
	remaining, err := tasks.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("alice still owns %d tasks after deletion", len(remaining))
	}

	// bob untouched
	bobs, err := tasks.ListByUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bobs) != 1 {
		t.Fatalf("bob's tasks affected: have %d; want 1", len(bobs))
	}
}

func TestDeleteAccountIdempotent(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if err := svc.DeleteAccount(ctx, 12345); err != nil {
		t.Fatalf("deleting an absent account must not fail: %v", err)
	}
}
