package repository

import (
	"context"
	"errors"
	"testing"

	"prayerhub/internal/models"
)

func TestCreateUser_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	db := setupRepoTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Email: "grace@example.com", Password: "hash-a"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	second := &models.User{Email: "grace@example.com", Password: "hash-b"}
	err := repo.Create(ctx, second)
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != models.CodeConflict {
		t.Fatalf("expected %s, got %s", models.CodeConflict, appErr.Code)
	}
}

func TestUpdateUser_DoesNotTouchPassword(t *testing.T) {
	t.Parallel()

	db := setupRepoTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "grace@example.com", Password: "bcrypt-hash", FullName: "Grace"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// A cached read loses the hash on the JSON round trip; Update must not
	// write that zero value back.
	stale := &models.User{ID: user.ID, Email: user.Email, FullName: "Grace Smith", Bio: "hello"}
	if err := repo.Update(ctx, stale); err != nil {
		t.Fatalf("update user: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password != "bcrypt-hash" {
		t.Fatalf("password hash overwritten: %q", stored.Password)
	}
	if stored.FullName != "Grace Smith" || stored.Bio != "hello" {
		t.Fatalf("profile fields not updated: %+v", stored)
	}
}
