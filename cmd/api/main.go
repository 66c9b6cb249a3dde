package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/unboundhq/unbound-backend/internal/config"
	"github.com/unboundhq/unbound-backend/internal/handler"
	"github.com/unboundhq/unbound-backend/internal/middleware"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/repository"
	"github.com/unboundhq/unbound-backend/internal/service"
	"github.com/unboundhq/unbound-backend/pkg/certificate"
	"github.com/unboundhq/unbound-backend/pkg/database"
	"github.com/unboundhq/unbound-backend/pkg/email"
	"github.com/unboundhq/unbound-backend/pkg/payment"
	"github.com/unboundhq/unbound-backend/pkg/qrcode"
	"github.com/unboundhq/unbound-backend/pkg/storage"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg := config.LoadConfig()

	db := database.NewDatabase()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	collegeRepo := repository.NewCollegeRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	festRepo := repository.NewFestRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Storage services
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}
	imgStorage := storage.NewCloudflareImages(
		cfg.CloudflareImages.AccountID,
		cfg.CloudflareImages.Token,
		cfg.CloudflareImages.Hash,
	)

	// Outbound adapters
	emailService := email.NewEmailService(logger)
	gateway := payment.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	qrService := qrcode.NewQRService(cfg.CheckinBaseURL)
	certRenderer := certificate.NewPDFRenderer(cfg.PlatformName)

	// Services
	authService := service.NewAuthService(userRepo, studentRepo, collegeRepo)
	festService := service.NewFestService(festRepo, collegeRepo)
	eventService := service.NewEventService(eventRepo, festRepo, collegeRepo, r2Storage, imgStorage)
	registrationService := service.NewRegistrationService(
		eventRepo,
		studentRepo,
		userRepo,
		festRepo,
		registrationRepo,
		teamRepo,
		emailService,
		qrService,
		logger,
	)
	paymentService := service.NewPaymentService(
		gateway,
		paymentRepo,
		registrationRepo,
		eventRepo,
		studentRepo,
		emailService,
		logger,
	)
	certificateService := service.NewCertificateService(
		registrationRepo,
		eventRepo,
		studentRepo,
		festRepo,
		collegeRepo,
		certRenderer,
	)
	dashboardService := service.NewDashboardService(
		collegeRepo,
		studentRepo,
		eventRepo,
		festRepo,
		registrationRepo,
		paymentRepo,
	)
	exploreService := service.NewExploreService(collegeRepo, festRepo, eventRepo, registrationRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	festHandler := handler.NewFestHandler(festService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	registrationHandler := handler.NewRegistrationHandler(registrationService, certificateService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, certificateService, validator)
	exploreHandler := handler.NewExploreHandler(exploreService)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	explore := api.Group("/explore")
	explore.Get("/fests", exploreHandler.Fests)
	explore.Get("/events", exploreHandler.Events)

	// Gateway status callback (public)
	api.Post("/payments/verify", paymentHandler.Verify)

	// Protected routes
	api.Use(middleware.AuthMiddleware())

	// College routes
	college := api.Group("/college", middleware.RequireRole(string(models.RoleCollege)))
	college.Get("/fests", festHandler.GetFests)
	college.Post("/fests", festHandler.CreateFest)
	college.Put("/fests/:id", festHandler.UpdateFest)
	college.Delete("/fests/:id", festHandler.DeleteFest)

	college.Get("/events", eventHandler.GetEvents)
	college.Post("/events", eventHandler.CreateEvent)
	college.Put("/events/:id", eventHandler.UpdateEvent)
	college.Delete("/events/:id", eventHandler.DeleteEvent)
	college.Post("/events/:id/poster", eventHandler.UploadPoster)
	college.Put("/events/:id/poster/approve", eventHandler.ApprovePoster)
	college.Put("/events/:id/poster/reject", eventHandler.RejectPoster)
	college.Delete("/events/:id/poster", eventHandler.DeletePoster)

	college.Get("/dashboard/earnings", dashboardHandler.Earnings)
	college.Get("/dashboard/registrations", dashboardHandler.Registrations)
	college.Get("/dashboard/analytics/fests", dashboardHandler.AnalyticsByFest)
	college.Get("/dashboard/analytics/dates", dashboardHandler.AnalyticsByDate)
	college.Post("/events/:id/certificates/approve-all", dashboardHandler.ApproveAllCertificates)
	college.Post("/events/:id/certificates/approve", dashboardHandler.ApproveCertificates)

	// Student routes
	student := api.Group("/student", middleware.RequireRole(string(models.RoleStudent)))
	student.Post("/registrations", registrationHandler.Register)
	student.Get("/registrations", registrationHandler.MyRegistrations)
	student.Get("/registrations/:id/ticket", registrationHandler.Ticket)
	student.Get("/events/:id/certificate", registrationHandler.Certificate)
	student.Get("/dashboard", dashboardHandler.StudentStats)

	// Payment order creation (any authenticated user)
	payments := api.Group("/payments")
	payments.Post("/orders", paymentHandler.CreateOrder)
	payments.Post("/orders/event", paymentHandler.CreateOrderForEvent)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
