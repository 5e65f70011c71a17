// Путь: internal/transport/api/dashboard.go
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"numberwise-dashboard/internal/service/dashboard"
)

type DashboardAPI struct {
	svc DashboardService
}

func NewDashboardAPI(svc DashboardService) *DashboardAPI {
	return &DashboardAPI{svc: svc}
}

func (api *DashboardAPI) Overview(c echo.Context) error {
	overview, err := api.svc.Overview(c.Request().Context())
	if err != nil {
		return internalError(c, CodeDBQueryFailed, "failed to load dashboard overview", err)
	}

	return c.JSON(http.StatusOK, overview)
}

func (api *DashboardAPI) ClientDetail(c echo.Context) error {
	clientID := c.Param("clientId")

	detail, err := api.svc.ClientDetail(c.Request().Context(), clientID)
	if errors.Is(err, dashboard.ErrClientNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error":   "Client not found",
			"message": "No client exists with id " + clientID,
		})
	}
	if err != nil {
		return internalError(c, CodeDBQueryFailed, "failed to load client detail", err)
	}

	return c.JSON(http.StatusOK, detail)
}
