package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/consultantnexus/marketplace-system/docs"
	"github.com/consultantnexus/marketplace-system/internal/api/handler"
	"github.com/consultantnexus/marketplace-system/internal/api/middleware"
	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// Dependencies carries everything the router needs wired up. Mongo and Redis
// may each be nil depending on the selected snapshot backend; the readiness
// probe only checks what is present.
type Dependencies struct {
	Sessions     ports.SessionService
	Projects     ports.ProjectService
	Applications ports.ApplicationService
	Reviews      ports.ReviewService
	Profiles     ports.ProfileService
	Directory    ports.DirectoryService
	Assist       ports.AssistService

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nexus"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	projectHandler := handler.NewProjectHandler(deps.Projects, deps.Reviews)
	applicationHandler := handler.NewApplicationHandler(deps.Applications)
	profileHandler := handler.NewProfileHandler(deps.Profiles, deps.Reviews)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	adminHandler := handler.NewAdminHandler(deps.Directory)
	assistHandler := handler.NewAssistHandler(deps.Assist)

	auth := middleware.Auth(deps.JWTSecret)

	// --- Session routes ---
	e.POST("/v1/auth/login", sessionHandler.Login)
	e.GET("/v1/me", sessionHandler.Me, auth)
	e.PUT("/v1/me/avatar", sessionHandler.UpdateAvatar, auth)
	e.POST("/v1/assist/avatar", assistHandler.SynthesizeAvatar, auth)

	// --- Business routes ---
	business := e.Group("/v1/business", auth, middleware.RBAC(domain.RoleBusiness))
	business.GET("/projects", projectHandler.List)
	business.POST("/projects", projectHandler.Create)
	business.GET("/projects/:id", projectHandler.Get)
	business.PUT("/projects/:id", projectHandler.Update)
	business.POST("/projects/:id/terminate", projectHandler.Terminate)
	business.GET("/projects/:id/applications", applicationHandler.ListForProject)
	business.POST("/projects/:id/review", projectHandler.SubmitReview)
	business.POST("/projects/:id/recommendations", assistHandler.Recommendations)
	business.GET("/consultants", directoryHandler.SearchConsultants)
	business.GET("/consultants/:id", directoryHandler.GetConsultant)
	business.POST("/invitations", applicationHandler.Invite)
	business.POST("/invitations/:id/cancel", applicationHandler.CancelInvitation)
	business.POST("/applications/:id/respond", applicationHandler.RespondAsBusiness)
	business.POST("/assist/description", assistHandler.RefineDescription)

	// --- Consultant routes ---
	consultant := e.Group("/v1/consultant", auth, middleware.RBAC(domain.RoleConsultant))
	consultant.GET("/profile", profileHandler.Get)
	consultant.PUT("/profile", profileHandler.Save)
	consultant.PUT("/status", profileHandler.SetStatus)
	consultant.GET("/reviews", profileHandler.MyReviews)
	consultant.GET("/opportunities", applicationHandler.Opportunities)
	consultant.POST("/applications", applicationHandler.Apply)
	consultant.POST("/applications/:id/cancel", applicationHandler.CancelApplication)
	consultant.GET("/invitations", applicationHandler.ListInvitations)
	consultant.POST("/invitations/:id/respond", applicationHandler.RespondToInvitation)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/projects", adminHandler.ListProjects)
	admin.GET("/applications", adminHandler.ListApplications)

	// --- Probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
