package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return user
}

func TestUserService_Update_KeepsHashWithoutPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "pass123")

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("expected new email, got %q", updated.Email)
	}
	if updated.Username != "alice" {
		t.Fatalf("expected username to be kept, got %q", updated.Username)
	}
	if updated.PasswordHash != seeded.PasswordHash {
		t.Fatalf("expected password hash unchanged")
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "pass123")

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash == seeded.PasswordHash {
		t.Fatalf("expected password hash to change")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Update_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice", "pass")
	bob := seedUser(t, repo, "bob", "pass")

	if _, err := svc.Update(context.Background(), bob.ID, ports.UpdateUserInput{Username: "alice"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "pass")

	if _, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Role: "owner"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Email: "x@example.com"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice", "pass")

	if err := svc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
