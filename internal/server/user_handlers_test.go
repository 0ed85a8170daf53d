package server

import (
	"fmt"
	"net/http"
	"testing"

	"prayerhub/internal/cache"
	"prayerhub/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func registerUserRoutes(s *Server) func(app *fiber.App) {
	return func(app *fiber.App) {
		app.Get("/users/me", s.GetMyProfile)
		app.Put("/users/me", s.UpdateMyProfile)
		app.Delete("/users/me", s.DeleteMyAccount)
		app.Get("/users/:id", s.GetUserProfile)
	}
}

func TestUserProfile(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	alice := createTestUser(t, db, "alice@example.com", models.UserRoleUser)
	app := appAs(alice.ID, registerUserRoutes(s))

	resp, body := doJSON(t, app, http.MethodGet, "/users/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["email"] != "alice@example.com" {
		t.Fatalf("unexpected email %v", body["email"])
	}
	if _, leaked := body["password"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}

	resp, body = doJSON(t, app, http.MethodPut, "/users/me", map[string]any{
		"full_name": "Alice Example",
		"bio":       "Praying daily",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["full_name"] != "Alice Example" {
		t.Fatalf("full_name not updated: %v", body["full_name"])
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/users/424242", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.StatusCode)
	}
}

// Not parallel: swaps the package-level cache client.
func TestUpdateMyProfile_CachedReadKeepsPasswordHash(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	prev := cache.GetClient()
	cache.SetClient(rdb)
	t.Cleanup(func() {
		cache.SetClient(prev)
		_ = rdb.Close()
	})

	s, db := newTestServer(t)
	alice := createTestUser(t, db, "alice@example.com", models.UserRoleUser)
	app := appAs(alice.ID, registerUserRoutes(s))

	// Warm the cache; the cached copy has no password (json:"-").
	resp, _ := doJSON(t, app, http.MethodGet, "/users/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// Update within the TTL so the handler loads the cached copy.
	resp, body := doJSON(t, app, http.MethodPut, "/users/me", map[string]any{
		"full_name": "Alice Example",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}

	var stored models.User
	if err := db.First(&stored, alice.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password == "" {
		t.Fatal("password hash blanked by profile update")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Password123!abc")); err != nil {
		t.Fatalf("stored hash no longer matches the password: %v", err)
	}
	if stored.FullName != "Alice Example" {
		t.Fatalf("full_name not updated: %q", stored.FullName)
	}
}

func TestDeleteMyAccountCascades(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	alice := createTestUser(t, db, "alice@example.com", models.UserRoleUser)

	prayer := models.Prayer{
		Title: "Mine", Content: "content", AuthorID: alice.ID,
		Status: models.PrayerStatusActive, PrivacyLevel: models.PrivacyPublic,
	}
	if err := db.Create(&prayer).Error; err != nil {
		t.Fatalf("create prayer: %v", err)
	}

	app := appAs(alice.ID, registerUserRoutes(s))
	resp, _ := doJSON(t, app, http.MethodDelete, "/users/me", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	var count int64
	db.Model(&models.User{}).Where("id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Fatalf("user should be deleted")
	}

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", alice.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", resp.StatusCode)
	}
}
