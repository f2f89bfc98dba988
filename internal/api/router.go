package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/handler"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/api/middleware"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/service"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/infrastructure/config"
	mongodb "github.com/Lokeshnegi69/story-board-interior-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Lokeshnegi69/story-board-interior-backend/internal/infrastructure/db/redis"
)

// Dependencies carries the external resources the router wires together.
type Dependencies struct {
	Config *config.Config
	DB     *mongo.Database
	Redis  *redis.Client
	Images ports.ImageStore
	Logger zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storyboard"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	categoryRepo := mongodb.NewCategoryRepository(deps.DB)
	testimonialRepo := mongodb.NewTestimonialRepository(deps.DB)
	heroRepo := mongodb.NewHeroRepository(deps.DB)
	inquiryRepo := mongodb.NewInquiryRepository(deps.DB)

	// --- Services ---
	tokenService := service.NewTokenService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessTTL,
		deps.Config.JWT.RefreshTTL,
	)
	authService := service.NewAuthService(userRepo, tokenService, deps.Config.BcryptCost, deps.Logger)
	projectService := service.NewProjectService(projectRepo, deps.Images, deps.Logger)
	categoryService := service.NewCategoryService(categoryRepo, deps.Logger)
	testimonialService := service.NewTestimonialService(testimonialRepo, deps.Logger)
	heroService := service.NewHeroService(heroRepo, deps.Images, deps.Logger)
	inquiryService := service.NewInquiryService(inquiryRepo, deps.Logger)
	userService := service.NewUserService(userRepo, deps.Config.BcryptCost, deps.Logger)
	dashboardService := service.NewDashboardService(projectRepo, inquiryRepo, testimonialRepo, categoryRepo, userRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	heroHandler := handler.NewHeroHandler(heroService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Middleware ---
	limiter := redisdb.NewRateLimiter(deps.Redis, deps.Config.RateLimit.Window, deps.Config.RateLimit.Max)
	rateLimit := middleware.RateLimit(limiter, deps.Logger)
	authn := middleware.Authenticate(tokenService, userRepo)
	optionalAuthn := middleware.OptionalAuthenticate(tokenService, userRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Health probes and operational endpoints (no auth, no rate limit) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", rateLimit)

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/profile", authHandler.Profile, authn)
	auth.PUT("/profile", authHandler.UpdateProfile, authn)

	// --- Projects ---
	projects := api.Group("/projects")
	projects.GET("", projectHandler.List, optionalAuthn)
	projects.GET("/slug/:slug", projectHandler.GetBySlug, optionalAuthn)
	projects.GET("/:id", projectHandler.Get, optionalAuthn)
	projects.POST("", projectHandler.Create, authn, adminOnly)
	projects.PUT("/:id", projectHandler.Update, authn, adminOnly)
	projects.DELETE("/:id", projectHandler.Delete, authn, adminOnly)
	projects.POST("/:id/images", projectHandler.AddImage, authn, adminOnly)
	projects.DELETE("/:id/images/:imageId", projectHandler.RemoveImage, authn, adminOnly)

	// --- Categories ---
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List, optionalAuthn)
	categories.GET("/slug/:slug", categoryHandler.GetBySlug)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authn, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authn, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authn, adminOnly)

	// --- Testimonials ---
	testimonials := api.Group("/testimonials")
	testimonials.GET("", testimonialHandler.List, optionalAuthn)
	testimonials.GET("/:id", testimonialHandler.Get, optionalAuthn)
	testimonials.POST("", testimonialHandler.Create, authn, adminOnly)
	testimonials.PUT("/:id", testimonialHandler.Update, authn, adminOnly)
	testimonials.DELETE("/:id", testimonialHandler.Delete, authn, adminOnly)

	// --- Hero sections ---
	heroes := api.Group("/hero-sections")
	heroes.GET("", heroHandler.List, optionalAuthn)
	heroes.GET("/:id", heroHandler.Get)
	heroes.POST("", heroHandler.Create, authn, adminOnly)
	heroes.PUT("/:id", heroHandler.Update, authn, adminOnly)
	heroes.DELETE("/:id", heroHandler.Delete, authn, adminOnly)

	// --- Inquiries (creation is the public contact form) ---
	inquiries := api.Group("/inquiries")
	inquiries.POST("", inquiryHandler.Create)
	inquiries.GET("", inquiryHandler.List, authn, adminOnly)
	inquiries.GET("/stats", inquiryHandler.Stats, authn, adminOnly)
	inquiries.GET("/:id", inquiryHandler.Get, authn, adminOnly)
	inquiries.PUT("/:id", inquiryHandler.Update, authn, adminOnly)
	inquiries.DELETE("/:id", inquiryHandler.Delete, authn, adminOnly)

	// --- User management (admin only) ---
	users := api.Group("/users", authn, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/stats", userHandler.Stats)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Dashboard (admin only) ---
	dashboard := api.Group("/dashboard", authn, adminOnly)
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/projects-by-category", dashboardHandler.ProjectsByCategory)
	dashboard.GET("/inquiries-by-status", dashboardHandler.InquiriesByStatus)

	return e
}
