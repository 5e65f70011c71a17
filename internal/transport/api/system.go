package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"numberwise-dashboard/internal/transport/middleware"
)

type SystemAPI struct {
	svc       DashboardService
	version   string
	env       string
	startedAt time.Time
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapInuse  uint64 `json:"heapInuse"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
	Goroutines int    `json:"goroutines"`
}

func NewSystemAPI(svc DashboardService, opts RouterOptions) *SystemAPI {
	return &SystemAPI{
		svc:       svc,
		version:   opts.Version,
		env:       opts.Environment,
		startedAt: opts.StartedAt,
	}
}

func (api *SystemAPI) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "Numberwise Dashboard API is running!",
		"timestamp":   time.Now().UTC(),
		"version":     api.version,
		"environment": api.env,
		"endpoints": []string{
			"/health",
			"/api/test-db",
			"/api/dashboard/overview",
			"/api/dashboard/client/:clientId",
			"/api/admin/client-count",
			"/api/admin/cleanup-duplicates",
			"/dashboard",
		},
	})
}

func (api *SystemAPI) Health(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(api.startedAt).Seconds(),
		"memory": MemoryStats{
			Alloc:      m.Alloc,
			HeapAlloc:  m.HeapAlloc,
			HeapInuse:  m.HeapInuse,
			Sys:        m.Sys,
			NumGC:      m.NumGC,
			Goroutines: runtime.NumGoroutine(),
		},
	})
}

func (api *SystemAPI) TestDB(c echo.Context) error {
	info, err := api.svc.DatabaseInfo(c.Request().Context())
	if err != nil {
		requestID := middleware.RequestID(c)
		log.Error().Err(err).Str("code", CodeDBUnavailable).Str("request_id", requestID).Msg("database connectivity check failed")

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status":    "error",
			"error":     "database unavailable",
			"code":      CodeDBUnavailable,
			"requestId": requestID,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "connected",
		"currentTime":     info.CurrentTime,
		"postgresVersion": info.PostgresVersion,
	})
}
