package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware восстанавливается после паник
func RecoveryMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				// Логируем стек вызовов
				log.Error().
					Interface("panic", r).
					Str("stack", string(debug.Stack())).
					Str("path", c.Request().URL.Path).
					Str("request_id", RequestID(c)).
					Msg("panic recovered")

				err = &echo.HTTPError{
					Code:     http.StatusInternalServerError,
					Message:  http.StatusText(http.StatusInternalServerError),
					Internal: fmt.Errorf("panic: %v", r),
				}
			}
		}()

		return next(c)
	}
}

// Recovery возвращает middleware для восстановления
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RecoveryMiddleware(next)
	}
}
