package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wimaserenity/gardens-api/internal/api/handler"
	"github.com/wimaserenity/gardens-api/internal/api/middleware"
	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/service"
	mongodb "github.com/wimaserenity/gardens-api/internal/infrastructure/db/mongo"
	"github.com/wimaserenity/gardens-api/internal/infrastructure/ratelimit"
)

// Rate-limit scopes. The global pair applies to every /api route; the others
// stack on top per endpoint group.
var (
	scopeGlobalDaily  = ratelimit.Scope{Name: "global_daily", Limit: 200, Window: 24 * time.Hour}
	scopeGlobalHourly = ratelimit.Scope{Name: "global_hourly", Limit: 50, Window: time.Hour}
	scopeLogin        = ratelimit.Scope{Name: "login", Limit: 5, Window: time.Minute}
	scopeInquiries    = ratelimit.Scope{Name: "inquiries", Limit: 10, Window: time.Hour}
	scopeContact      = ratelimit.Scope{Name: "contact", Limit: 5, Window: time.Hour}
	scopeReads        = ratelimit.Scope{Name: "reads", Limit: 100, Window: time.Hour}
)

// Config carries everything the router needs to assemble the service graph.
type Config struct {
	DB            *mongo.Database
	Redis         *redis.Client
	JWTSecret     string
	JWTTTL        time.Duration
	BusinessEmail string
	Mailer        ports.Mailer
	Notifier      ports.Notifier
	Log           zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gardens"))

	// --- Rate limiting ---
	var store ratelimit.Store
	if cfg.Redis != nil {
		store = ratelimit.NewRedisStore(cfg.Redis)
	} else {
		store = ratelimit.NewMemoryStore()
	}
	limiter := ratelimit.NewLimiter(store, cfg.Log)
	globalLimit := middleware.RateLimit(limiter, scopeGlobalDaily, scopeGlobalHourly)
	loginLimit := middleware.RateLimit(limiter, scopeLogin)
	inquiryLimit := middleware.RateLimit(limiter, scopeInquiries)
	contactLimit := middleware.RateLimit(limiter, scopeContact)
	readLimit := middleware.RateLimit(limiter, scopeReads)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(cfg.DB)
	roomRepo := mongodb.NewRoomRepository(cfg.DB)
	inquiryRepo := mongodb.NewInquiryRepository(cfg.DB)
	eventRepo := mongodb.NewEventInquiryRepository(cfg.DB)
	packageRepo := mongodb.NewPackageRepository(cfg.DB)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, cfg.Log)
	authService := service.NewAuthService(userRepo, tokens, cfg.Log)
	roomService := service.NewRoomService(roomRepo, cfg.Log)
	inquiryService := service.NewInquiryService(inquiryRepo, eventRepo, roomRepo, cfg.Notifier, cfg.Log)
	packageService := service.NewPackageService(packageRepo, cfg.Log)
	adminService := service.NewAdminService(inquiryRepo, eventRepo, roomRepo, cfg.Log)
	contactService := service.NewContactService(cfg.Mailer, cfg.BusinessEmail, cfg.Log)

	// --- Guards ---
	anyStaff := middleware.RequireRole(tokens, userRepo, domain.RoleStaff, cfg.Log)
	managerUp := middleware.RequireRole(tokens, userRepo, domain.RoleManager, cfg.Log)
	adminOnly := middleware.RequireRole(tokens, userRepo, domain.RoleAdmin, cfg.Log)

	// --- Handlers ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Redis)
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	packageHandler := handler.NewPackageHandler(packageService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Routes ---
	apiGroup := e.Group("/api", globalLimit)

	apiGroup.GET("/health", healthHandler.Liveness)
	apiGroup.GET("/health/ready", readinessHandler.Readiness)

	rooms := apiGroup.Group("/rooms", readLimit)
	rooms.GET("", roomHandler.List)
	rooms.GET("/featured", roomHandler.Featured)
	rooms.GET("/type/:type", roomHandler.ByType)
	rooms.GET("/:slug", roomHandler.GetBySlug)

	packages := apiGroup.Group("/packages", readLimit)
	packages.GET("", packageHandler.List)
	packages.GET("/featured", packageHandler.Featured)
	packages.GET("/:slug", packageHandler.GetBySlug)

	apiGroup.POST("/inquiries", inquiryHandler.Create, inquiryLimit)
	apiGroup.POST("/inquiries/event", inquiryHandler.CreateEvent, inquiryLimit)
	apiGroup.POST("/contact", contactHandler.Submit, contactLimit)

	auth := apiGroup.Group("/auth")
	auth.POST("/login", authHandler.Login, loginLimit)
	auth.GET("/me", authHandler.Me, anyStaff)
	auth.POST("/change-password", authHandler.ChangePassword, anyStaff)
	auth.POST("/users", authHandler.CreateUser, adminOnly)
	auth.GET("/users", authHandler.ListUsers, adminOnly)

	admin := apiGroup.Group("/admin")
	admin.GET("/dashboard", adminHandler.Dashboard, anyStaff)

	inquiries := admin.Group("/inquiries", anyStaff)
	inquiries.GET("", inquiryHandler.List)
	inquiries.GET("/:id", inquiryHandler.Get)
	inquiries.PATCH("/:id", inquiryHandler.SetStatus)
	inquiries.POST("/:id/mark-read", inquiryHandler.MarkRead)
	inquiries.POST("/:id/mark-replied", inquiryHandler.MarkReplied)
	inquiries.DELETE("/:id", inquiryHandler.Archive, managerUp)

	events := admin.Group("/event-inquiries", anyStaff)
	events.GET("", inquiryHandler.ListEvents)
	events.GET("/:id", inquiryHandler.GetEvent)
	events.PATCH("/:id", inquiryHandler.SetEventStatus)
	events.POST("/:id/mark-read", inquiryHandler.MarkEventRead)
	events.POST("/:id/mark-replied", inquiryHandler.MarkEventReplied)
	events.DELETE("/:id", inquiryHandler.ArchiveEvent, managerUp)

	adminRooms := admin.Group("/rooms", anyStaff)
	adminRooms.GET("", roomHandler.AdminList)
	adminRooms.GET("/:id", roomHandler.AdminGet)
	adminRooms.POST("", roomHandler.Create, managerUp)
	adminRooms.PATCH("/:id", roomHandler.Update, managerUp)
	adminRooms.DELETE("/:id", roomHandler.Deactivate, adminOnly)
	adminRooms.POST("/:id/activate", roomHandler.Activate, managerUp)
	adminRooms.POST("/:id/toggle-featured", roomHandler.ToggleFeatured, managerUp)

	// --- Operational endpoints (outside the /api rate limits) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
