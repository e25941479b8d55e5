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
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"rakapratama/talent-tracker/internal/config"
	"rakapratama/talent-tracker/internal/handlers"
	"rakapratama/talent-tracker/internal/repositories"
	"rakapratama/talent-tracker/internal/services"
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
	candidateRepo := repositories.NewCandidateRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize resume pipeline
	resumeService := services.NewResumeService(
		resumeRepo,
		candidateRepo,
		geminiService,
		vectorStore,
		pdfParser,
		3,
	)
	log.Println("✅ Resume service initialized")

	// Initialize interview monitor
	alertFeed := services.NewAlertFeed(cfg.Monitor.FeedCapacity)

	var mailer services.ReminderMailer
	if cfg.SMTP.Enabled() {
		mailer = services.NewReminderMailer(services.MailerConfig{
			SMTPHost:  cfg.SMTP.Host,
			SMTPPort:  cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			From:      cfg.SMTP.From,
			Recipient: cfg.SMTP.Recipient,
			UseTLS:    cfg.SMTP.UseTLS,
		})
		log.Println("✅ Email reminders enabled")
	} else {
		log.Println("ℹ️  SMTP not configured, email reminders disabled")
	}

	monitor := services.NewInterviewMonitor(
		candidateRepo,
		alertFeed,
		mailer,
		cfg.Monitor.CheckInterval,
		cfg.Monitor.LeadTime,
	)
	monitor.Start()
	log.Println("✅ Interview monitor started successfully")

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, resumeService)
	resumeHandler := handlers.NewResumeHandler(
		resumeRepo,
		candidateRepo,
		resumeService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	alertHandler := handlers.NewAlertHandler(alertFeed)
	dashboardHandler := handlers.NewDashboardHandler(candidateRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Talent Tracker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/candidates", candidateHandler.HandleCreate)
	api.Get("/candidates", candidateHandler.HandleList)
	api.Get("/candidates/:id", candidateHandler.HandleGet)
	api.Put("/candidates/:id", candidateHandler.HandleUpdate)
	api.Delete("/candidates/:id", candidateHandler.HandleDelete)
	api.Post("/candidates/:id/resume", resumeHandler.HandleUpload)
	api.Get("/resumes/search", resumeHandler.HandleSearch)
	api.Get("/alerts", alertHandler.HandleList)
	api.Get("/dashboard/stats", dashboardHandler.HandleStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Tracker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/candidates",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"PUT /api/v1/candidates/:id",
				"DELETE /api/v1/candidates/:id",
				"POST /api/v1/candidates/:id/resume",
				"GET /api/v1/resumes/search",
				"GET /api/v1/alerts",
				"GET /api/v1/dashboard/stats",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		monitor.Stop()
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
