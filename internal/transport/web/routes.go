package web

import (
	"github.com/labstack/echo/v4"

	"numberwise-dashboard/internal/web/templates"
)

// SetupRoutes регистрирует страницы веб-интерфейса
func SetupRoutes(e *echo.Echo, svc OverviewProvider, renderer *templates.Renderer) {
	handler := NewHandler(svc, renderer)

	e.GET("/dashboard", handler.Dashboard)
}
