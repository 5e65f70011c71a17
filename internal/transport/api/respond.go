package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"numberwise-dashboard/internal/transport/middleware"
)

// Коды ошибок, которые видит клиент вместо текста ошибки БД
const (
	CodeDBUnavailable = "DB_UNAVAILABLE"
	CodeDBQueryFailed = "DB_QUERY_FAILED"
)

// internalError логирует ошибку и отвечает 500 с кодом и ID запроса
func internalError(c echo.Context, code, message string, err error) error {
	requestID := middleware.RequestID(c)

	log.Error().Err(err).
		Str("code", code).
		Str("request_id", requestID).
		Str("path", c.Request().URL.Path).
		Msg(message)

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":     message,
		"code":      code,
		"requestId": requestID,
	})
}
