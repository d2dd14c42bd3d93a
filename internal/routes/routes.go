package routes

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/auth"
	"github.com/BruksfildServices01/studio-rental/internal/config"
	"github.com/BruksfildServices01/studio-rental/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-rental/internal/infra/repository"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/metrics"
	"github.com/BruksfildServices01/studio-rental/internal/middleware"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
	ucBooking "github.com/BruksfildServices01/studio-rental/internal/usecase/booking"
	ucStudio "github.com/BruksfildServices01/studio-rental/internal/usecase/studio"
	"github.com/BruksfildServices01/studio-rental/internal/validators"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage storage.Storage
	Audit   *audit.Dispatcher

	// opcional: sem Redis o cache só repassa
	Redis *redis.Client
	// opcional: padrão é o relógio do fuso configurado
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	now := deps.Now
	if now == nil {
		now = timezone.Clock(cfg.Timezone)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	studioRepo := infraRepo.NewStudioGormRepository(deps.DB)
	studioCache := infraRepo.NewStudioCache(studioRepo, deps.Redis, cfg.StudioCacheTTL)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	var resolver validators.Resolver
	if cfg.VerifyEmailDomain {
		resolver = net.DefaultResolver
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(handlers.BookingUseCases{
		Create:       ucBooking.NewCreateBooking(bookingRepo, deps.Audit).WithClock(now),
		Edit:         ucBooking.NewEditBooking(bookingRepo, deps.Audit).WithClock(now),
		UploadProof:  ucBooking.NewUploadProof(bookingRepo, deps.Storage, deps.Audit),
		UpdateStatus: ucBooking.NewUpdateStatus(bookingRepo, deps.Audit).WithClock(now),
		Delete:       ucBooking.NewDeleteBooking(bookingRepo, deps.Storage, deps.Audit),
		Get:          ucBooking.NewGetBooking(bookingRepo),
		List:         ucBooking.NewListBookings(bookingRepo),
		Availability: ucBooking.NewCheckAvailability(bookingRepo),
	})

	dashboardHandler := handlers.NewDashboardHandler(
		ucBooking.NewDashboard(bookingRepo).WithClock(now),
	)

	// ======================================================
	// USE CASES — STUDIOS
	// ======================================================
	studioHandler := handlers.NewStudioHandler(handlers.StudioUseCases{
		Create: ucStudio.NewCreateStudio(studioRepo, deps.Storage, deps.Audit),
		Update: ucStudio.NewUpdateStudio(studioRepo, studioCache, deps.Storage, deps.Audit),
		Delete: ucStudio.NewDeleteStudio(studioRepo, studioCache, deps.Storage, deps.Audit),
		List:   ucStudio.NewListStudios(studioRepo),
		Get:    ucStudio.NewGetStudio(studioRepo, studioCache).WithClock(now),
	})

	authHandler := handlers.NewAuthHandler(deps.DB, tokens, resolver)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, cfg.Timezone)

	// ======================================================
	// INFRA ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": now().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", metrics.Handler())

	if cfg.StorageDriver == "local" || cfg.StorageDriver == "" {
		r.Static("/storage", cfg.StorageLocalDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/studios", studioHandler.List)
		api.GET("/studios/:id", studioHandler.Show)
		api.GET("/studios/:id/availability", bookingHandler.Availability)

		// ------------------------------
		// AUTENTICADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", authHandler.Me)
			secured.GET("/dashboard", dashboardHandler.Show)

			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Show)
			secured.PUT("/bookings/:id", bookingHandler.Update)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.POST("/bookings/:id/payment-proof", bookingHandler.UploadProof)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(tokens), middleware.RequireAdmin())
		{
			admin.GET("/studios", studioHandler.List)
			admin.GET("/studios/:id", studioHandler.Show)
			admin.POST("/studios", studioHandler.Create)
			admin.PUT("/studios/:id", studioHandler.Update)
			admin.DELETE("/studios/:id", studioHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
