package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/config"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/handlers"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	driveRepo := repositories.NewDriveRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	notifRepo := repositories.NewNotificationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	extractor := services.NewTextExtractor()

	// Gemini is optional; without it the matcher falls back to keyword
	// scoring and interview generation serves the canned set.
	var generator services.TextGenerator
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		generator = geminiService
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set. AI features run in fallback mode.")
	}

	matcherService := services.NewMatcherService(generator)
	interviewService := services.NewInterviewService(generator)

	// Qdrant is optional too; drive search degrades to store filters.
	var driveSearch services.DriveSearchService
	if cfg.Qdrant.URL != "" && geminiService != nil {
		driveSearch, err = services.NewDriveSearchService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			geminiService,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := driveSearch.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Qdrant initialized successfully")
	}

	var mailer services.Mailer
	if cfg.MailConfigured() {
		mailer = services.NewMailer(cfg.Mail)
		log.Println("✅ Mailer initialized successfully")
	} else {
		log.Println("⚠️  Email credentials not set. Status emails disabled.")
	}

	lifecycleService := services.NewLifecycleService(
		appRepo,
		driveRepo,
		resumeRepo,
		accountRepo,
		notifRepo,
		mailer,
	)
	log.Println("✅ Services initialized successfully")

	// Seed demo drives on an empty store
	if err := services.SeedDrives(driveRepo); err != nil {
		log.Printf("⚠️  Demo drive seeding failed: %v\n", err)
	}

	// Auth plumbing
	sessionStore := session.New(session.Config{
		Expiration:     cfg.Auth.SessionTTL,
		CookieHTTPOnly: true,
	})
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordPepper)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authMiddleware := auth.NewMiddleware(sessionStore, issuer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountRepo, hasher, issuer, authMiddleware)
	profileHandler := handlers.NewProfileHandler(accountRepo)
	driveHandler := handlers.NewDriveHandler(driveRepo, accountRepo, appRepo, notifRepo, driveSearch)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, driveRepo, matcherService, storageService, extractor)
	applicationHandler := handlers.NewApplicationHandler(lifecycleService, appRepo, resumeRepo, driveRepo)
	notificationHandler := handlers.NewNotificationHandler(notifRepo)
	interviewHandler := handlers.NewInterviewHandler(interviewService, driveRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CampusHire API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000,http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(authMiddleware.Resolve)

	// Uploaded resume files
	app.Static("/uploads", "./uploads")

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.HandleSignup)
	authGroup.Post("/login", loginLimiter, authHandler.HandleLogin)
	authGroup.Post("/logout", authHandler.HandleLogout)

	api.Get("/drives", driveHandler.HandleList)
	api.Get("/drives/:id", driveHandler.HandleGet)
	api.Post("/drives", auth.RequireRole(models.RoleRecruiter), driveHandler.HandleCreate)

	api.Get("/notifications", notificationHandler.HandleList)

	student := api.Group("/student", auth.RequireRole(models.RoleCandidate))
	student.Get("/profile", profileHandler.HandleGet)
	student.Put("/profile", profileHandler.HandleUpdate)
	student.Get("/resume", resumeHandler.HandleGet)
	student.Put("/resume", resumeHandler.HandleSave)
	student.Post("/resume/upload", resumeHandler.HandleUpload)
	student.Post("/drives/:id/apply", applicationHandler.HandleApply)
	student.Get("/applications", applicationHandler.HandleListMine)
	student.Post("/interview", interviewHandler.HandleGenerate)

	admin := api.Group("/admin", auth.RequireRole(models.RoleRecruiter))
	admin.Get("/drives/:id/applicants", applicationHandler.HandleListApplicants)
	admin.Put("/applications/:id/status", applicationHandler.HandleStatusUpdate)
	admin.Put("/applications/:id/interview", applicationHandler.HandleInterviewUpdate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CampusHire API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/signup",
				"POST /api/v1/auth/login",
				"GET /api/v1/drives",
				"POST /api/v1/student/drives/:id/apply",
				"GET /api/v1/notifications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
