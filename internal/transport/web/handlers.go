// Путь: internal/transport/web/handlers.go
package web

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"numberwise-dashboard/internal/domain"
	"numberwise-dashboard/internal/transport/middleware"
	"numberwise-dashboard/internal/web/templates"
)

// OverviewProvider - источник данных для страницы дашборда
type OverviewProvider interface {
	Overview(ctx context.Context) (*domain.Overview, error)
}

// Handler - обработчик веб-интерфейса
type Handler struct {
	svc      OverviewProvider
	renderer *templates.Renderer
}

// NewHandler создает новый обработчик
func NewHandler(svc OverviewProvider, renderer *templates.Renderer) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
	}
}

// render рендерит шаблон и отдает его как HTML
func (h *Handler) render(c echo.Context, status int, name string, data map[string]interface{}) error {
	out, err := h.renderer.Render(name, data)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, out)
}

// renderError отдает страницу ошибки без внутренних деталей
func (h *Handler) renderError(c echo.Context, message string, err error) error {
	requestID := middleware.RequestID(c)
	log.Error().Err(err).Str("request_id", requestID).Str("path", c.Request().URL.Path).Msg(message)

	return h.render(c, http.StatusInternalServerError, "error", map[string]interface{}{
		"message":    "Failed to load dashboard data. Please try again.",
		"request_id": requestID,
	})
}
