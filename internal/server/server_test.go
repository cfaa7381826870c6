package server

import (
	"testing"

	"campushire/internal/config"
	"campushire/internal/database"
	"campushire/internal/repository"
	"campushire/internal/service"
	"campushire/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires a Server against an in-memory database with the
// full schema and a throwaway upload directory, and returns a Fiber app
// with the real routes registered.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	files, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}

	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	followRepo := repository.NewFollowRequestRepository(db)
	userRepo := repository.NewUserRepository(db)

	s := &Server{
		config:          &config.Config{},
		db:              db,
		files:           files,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		followRepo:      followRepo,
		userRepo:        userRepo,
	}
	s.companyService = service.NewCompanyService(companyRepo)
	s.jobService = service.NewJobService(jobRepo, companyRepo)
	s.applicationService = service.NewApplicationService(applicationRepo, files)
	s.followService = service.NewFollowRequestService(followRepo)
	s.userService = service.NewUserService(userRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}
