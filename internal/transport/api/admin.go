package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminAPI struct {
	svc DashboardService
}

func NewAdminAPI(svc DashboardService) *AdminAPI {
	return &AdminAPI{svc: svc}
}

// CleanupDuplicates удаляет дубликаты клиентов. Необратимо.
func (api *AdminAPI) CleanupDuplicates(c echo.Context) error {
	result, err := api.svc.CleanupDuplicates(c.Request().Context())
	if err != nil {
		return internalError(c, CodeDBQueryFailed, "failed to clean up duplicate clients", err)
	}

	return c.JSON(http.StatusOK, result)
}

func (api *AdminAPI) ClientCount(c echo.Context) error {
	count, err := api.svc.ClientCount(c.Request().Context())
	if err != nil {
		return internalError(c, CodeDBQueryFailed, "failed to count clients", err)
	}

	return c.JSON(http.StatusOK, count)
}
