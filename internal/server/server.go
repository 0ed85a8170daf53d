// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"prayerhub/internal/cache"
	"prayerhub/internal/config"
	"prayerhub/internal/database"
	"prayerhub/internal/middleware"
	"prayerhub/internal/repository"
	"prayerhub/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	promMiddleware  *fiberprometheus.FiberPrometheus
	userRepo        repository.UserRepository
	prayerRepo      repository.PrayerRepository
	categoryRepo    repository.CategoryRepository
	groupRepo       repository.GroupRepository
	requestRepo     repository.MembershipRequestRepository
	prayerService   *service.PrayerService
	categoryService *service.CategoryService
	groupService    *service.GroupService
}

// NewServer creates a new server instance, connecting the database and Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	requestRepo := repository.NewMembershipRequestRepository(db)

	prom := middleware.InitMetrics("prayerhub-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		prayerRepo:     prayerRepo,
		categoryRepo:   categoryRepo,
		groupRepo:      groupRepo,
		requestRepo:    requestRepo,
	}

	gate := service.NewGate(groupRepo, userRepo)
	server.prayerService = service.NewPrayerService(prayerRepo, gate)
	server.categoryService = service.NewCategoryService(categoryRepo, gate)
	server.groupService = service.NewGroupService(groupRepo, requestRepo, gate)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Everything below requires authentication.
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Delete("/me", s.DeleteMyAccount)
	users.Get("/:id", s.GetUserProfile)

	// Prayer routes
	prayers := protected.Group("/prayers")
	prayers.Get("/", s.GetPrayers)
	prayers.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_prayer"), s.CreatePrayer)
	// Specific /:id/:resource routes BEFORE generic /:id routes
	prayers.Post("/:id/pray", s.Intercede)
	prayers.Get("/:id", s.GetPrayer)
	prayers.Put("/:id", s.UpdatePrayer)
	prayers.Delete("/:id", s.DeletePrayer)

	// Category routes
	categories := protected.Group("/categories")
	categories.Get("/", s.GetCategories)
	categories.Post("/", s.CreateCategory)
	categories.Get("/:id", s.GetCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)

	// Group routes
	groups := protected.Group("/groups")
	groups.Get("/", s.GetGroups)
	groups.Post("/", s.CreateGroup)
	// Membership request collection routes before /:id routes
	groups.Get("/requests", s.GetMembershipRequests)
	groups.Get("/requests/:id", s.GetMembershipRequest)
	groups.Post("/requests/:id/approve", s.ApproveMembershipRequest)
	groups.Post("/requests/:id/reject", s.RejectMembershipRequest)
	groups.Post("/:id/join", s.JoinGroup)
	groups.Post("/:id/request-join", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "request_join"), s.RequestJoinGroup)
	groups.Get("/:id/members", s.GetGroupMembers)
	groups.Get("/:id", s.GetGroup)
	groups.Put("/:id", s.UpdateGroup)
	groups.Delete("/:id", s.DeleteGroup)
}

// Shutdown releases server-held resources (Redis and database connections).
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			firstErr = err
		}
	}

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
