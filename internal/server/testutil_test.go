package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prayerhub/internal/config"
	"prayerhub/internal/database"
	"prayerhub/internal/models"
	"prayerhub/internal/repository"
	"prayerhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a sqlite database for handler tests and migrates the
// full schema.
func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server over an in-memory sqlite database with the
// full repository and service wiring, but without Redis or metrics.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, ":memory:")
	return newTestServerWithDB(t, db), db
}

func newTestServerWithDB(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	requestRepo := repository.NewMembershipRequestRepository(db)
	gate := service.NewGate(groupRepo, userRepo)

	return &Server{
		config:          &config.Config{JWTSecret: "test-secret", Env: "test"},
		db:              db,
		userRepo:        userRepo,
		prayerRepo:      prayerRepo,
		categoryRepo:    categoryRepo,
		groupRepo:       groupRepo,
		requestRepo:     requestRepo,
		prayerService:   service.NewPrayerService(prayerRepo, gate),
		categoryService: service.NewCategoryService(categoryRepo, gate),
		groupService:    service.NewGroupService(groupRepo, requestRepo, gate),
	}
}

// appAs returns a Fiber app whose requests run as the given user, with the
// provided routes registered by the caller.
func appAs(userID uint, register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	register(app)
	return app
}

// createTestUser persists a user with a bcrypt password and the given role.
func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123!abc"), bcrypt.MinCost)
	user := &models.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Test User",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

// createTestGroup persists a group with the creator's admin membership.
func createTestGroup(t *testing.T, db *gorm.DB, creator *models.User, name string, private bool) *models.Group {
	t.Helper()
	group := &models.Group{
		Name:            name,
		IsPrivate:       private,
		CreatedByUserID: creator.ID,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("create group %s: %v", name, err)
	}
	membership := &models.GroupMembership{
		GroupID: group.ID,
		UserID:  creator.ID,
		Role:    models.GroupRoleAdmin,
	}
	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("create admin membership: %v", err)
	}
	return group
}

// doJSON performs a request against the app with an optional JSON body and
// decodes the JSON response into a map. Returns the response and the body.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal response %q: %v", raw, err)
		}
	}
	return resp, decoded
}
