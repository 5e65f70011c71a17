package middleware

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// Тело ответа для несуществующего маршрута, одинаковое для любого метода
const (
	NotFoundError   = "Not Found"
	NotFoundMessage = "The requested endpoint does not exist"
)

// RequestIDs проставляет X-Request-ID (UUID), по нему ответы с ошибкой связываются с логами
func RequestIDs() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestID возвращает ID текущего запроса
func RequestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// ErrorHandler переводит ошибки обработчиков в JSON ответы.
// Текст внутренних ошибок клиенту не отдается.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
			message = m
		}
	}

	var respErr error
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		respErr = c.JSON(http.StatusNotFound, map[string]string{
			"error":   NotFoundError,
			"message": NotFoundMessage,
		})
	case code >= http.StatusInternalServerError:
		log.Error().Err(err).Str("request_id", RequestID(c)).Str("path", c.Request().URL.Path).Msg("unhandled error")
		respErr = c.JSON(code, map[string]string{
			"error":     http.StatusText(code),
			"requestId": RequestID(c),
		})
	default:
		respErr = c.JSON(code, map[string]string{"error": message})
	}

	if respErr != nil {
		log.Error().Err(respErr).Msg("failed to write error response")
	}
}
