package api

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"numberwise-dashboard/internal/domain"
	"numberwise-dashboard/internal/transport/middleware"
)

// DashboardService - операции, которые API отдает наружу
type DashboardService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	ClientDetail(ctx context.Context, clientID string) (*domain.ClientDetailResponse, error)
	CleanupDuplicates(ctx context.Context) (*domain.CleanupResult, error)
	ClientCount(ctx context.Context) (*domain.ClientCount, error)
	DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error)
}

// RouterOptions - параметры сборки роутера
type RouterOptions struct {
	Version      string
	Environment  string
	AllowOrigins []string
	StartedAt    time.Time
}

// NewRouter создает Echo сервер с middleware и JSON маршрутами
func NewRouter(svc DashboardService, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler

	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}
	if len(opts.AllowOrigins) == 0 {
		opts.AllowOrigins = []string{"*"}
	}

	// Middleware
	e.Use(middleware.RequestIDs())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recovery())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: opts.AllowOrigins}))

	SetupRoutes(e, svc, opts)

	return e
}

// SetupRoutes настраивает маршруты API
func SetupRoutes(e *echo.Echo, svc DashboardService, opts RouterOptions) {
	systemAPI := NewSystemAPI(svc, opts)
	e.GET("/", systemAPI.Info)
	e.GET("/health", systemAPI.Health)

	apiGroup := e.Group("/api")
	apiGroup.GET("/test-db", systemAPI.TestDB)

	dashboardAPI := NewDashboardAPI(svc)
	apiGroup.GET("/dashboard/overview", dashboardAPI.Overview)
	apiGroup.GET("/dashboard/client/:clientId", dashboardAPI.ClientDetail)

	// Админские утилиты без подтверждения, аутентификации в сервисе нет
	adminAPI := NewAdminAPI(svc)
	apiGroup.GET("/admin/cleanup-duplicates", adminAPI.CleanupDuplicates)
	apiGroup.GET("/admin/client-count", adminAPI.ClientCount)
}
