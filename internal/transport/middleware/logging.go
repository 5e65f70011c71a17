package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware логирует все запросы
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Пишем ответ с ошибкой до логирования
			c.Error(err)
		}

		latency := time.Since(start)

		logEvent := log.Info()
		if err != nil {
			if c.Response().Status >= http.StatusInternalServerError {
				logEvent = log.Error().Err(err)
			} else {
				logEvent = log.Warn().Err(err)
			}
		}

		logEvent.Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Str("ip", c.RealIP()).
			Dur("latency", latency).
			Str("request_id", RequestID(c)).
			Str("user_agent", c.Request().UserAgent()).
			Msg("request")

		return nil
	}
}

// RequestLogger возвращает middleware для логирования
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return LoggerMiddleware(next)
	}
}
