// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"campushire/internal/config"
	"campushire/internal/database"
	"campushire/internal/middleware"
	"campushire/internal/repository"
	"campushire/internal/service"
	"campushire/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	files          *storage.FileStore
	promMiddleware *fiberprometheus.FiberPrometheus

	companyRepo     repository.CompanyRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	followRepo      repository.FollowRequestRepository
	userRepo        repository.UserRepository

	companyService     *service.CompanyService
	jobService         *service.JobService
	applicationService *service.ApplicationService
	followService      *service.FollowRequestService
	userService        *service.UserService
}

// NewServer creates a Server using already-initialized dependencies. The
// store handle is passed in explicitly; nothing here reads process-wide
// state.
func NewServer(cfg *config.Config, db *gorm.DB, files *storage.FileStore) *Server {
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	followRepo := repository.NewFollowRequestRepository(db)
	userRepo := repository.NewUserRepository(db)

	server := &Server{
		config:          cfg,
		db:              db,
		files:           files,
		promMiddleware:  fiberprometheus.New("campushire-api"),
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		followRepo:      followRepo,
		userRepo:        userRepo,
	}
	server.companyService = service.NewCompanyService(companyRepo)
	server.jobService = service.NewJobService(jobRepo, companyRepo)
	server.applicationService = service.NewApplicationService(applicationRepo, files)
	server.followService = service.NewFollowRequestService(followRepo)
	server.userService = service.NewUserService(userRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID to deeper layers
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on
	// error responses.
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
		// Never rate-limit preflight requests; they should be handled by CORS.
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

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Legacy route used by the frontend's startup probe
	api.Get("/health", s.LivenessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Company routes
	companies := api.Group("/companies")
	companies.Get("/", s.GetCompanies)
	companies.Get("/:id", s.GetCompany)
	companies.Post("/", s.CreateCompany)
	companies.Put("/:id", s.UpdateCompany)
	companies.Delete("/:id", s.DeleteCompany)

	// Job routes
	jobs := api.Group("/jobs")
	jobs.Get("/", s.GetJobs)
	jobs.Get("/:id", s.GetJob)
	jobs.Post("/", s.CreateJob)
	jobs.Put("/:id", s.UpdateJob)
	jobs.Delete("/:id", s.DeleteJob)

	// Application routes (create accepts multipart/form-data for the resume)
	applications := api.Group("/applications")
	applications.Get("/", s.GetApplications)
	applications.Get("/:id", s.GetApplication)
	applications.Post("/", s.CreateApplication)
	applications.Put("/:id", s.UpdateApplication)
	applications.Delete("/:id", s.DeleteApplication)

	// Follow-request routes
	followRequests := api.Group("/follow-requests")
	followRequests.Get("/", s.GetFollowRequests)
	followRequests.Get("/:id", s.GetFollowRequest)
	followRequests.Post("/", s.CreateFollowRequest)
	followRequests.Put("/:id", s.UpdateFollowRequest)
	followRequests.Delete("/:id", s.DeleteFollowRequest)

	// User sync from the auth provider
	users := api.Group("/users")
	users.Post("/", s.UpsertUser)

	// Uploaded resumes are served verbatim from the upload directory
	app.Static("/uploads", s.files.Root())
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Backend server is running",
	})
}

// ReadinessCheck reports whether the server can reach its database.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if err := database.Ping(c.Context(), s.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
