// Путь: internal/transport/web/dashboard.go
package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"numberwise-dashboard/internal/domain"
)

// Классы бейджей как в SPA: ноль серый, остальное по типу счетчика
const (
	badgeZero    = "px-2 py-1 text-xs bg-gray-100 text-gray-600 rounded-full"
	badgePending = "px-2 py-1 text-xs rounded-full font-medium bg-orange-100 text-orange-800"
	badgeReady   = "px-2 py-1 text-xs rounded-full font-medium bg-yellow-100 text-yellow-800"
	badgePosted  = "px-2 py-1 text-xs rounded-full font-medium bg-green-100 text-green-800"
	badgeErrors  = "px-2 py-1 text-xs rounded-full font-medium bg-red-100 text-red-800"
)

// Dashboard отображает главную страницу с дашбордом
func (h *Handler) Dashboard(c echo.Context) error {
	overview, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return h.renderError(c, "failed to load dashboard overview", err)
	}

	return h.render(c, http.StatusOK, "dashboard", dashboardBindings(overview))
}

func dashboardBindings(overview *domain.Overview) map[string]interface{} {
	clients := make([]map[string]interface{}, 0, len(overview.Clients))
	for _, cl := range overview.Clients {
		accountingSystem := ""
		if cl.AccountingSystem != nil {
			accountingSystem = *cl.AccountingSystem
		}
		errorsCount := cl.ZenvoicesFailed + cl.AccountingErrors

		clients = append(clients, map[string]interface{}{
			"id":                cl.ClientID,
			"name":              cl.ClientName,
			"accounting_system": accountingSystem,
			"zenvoices_pending": cl.ZenvoicesPending,
			"zenvoices_ready":   cl.ZenvoicesReady,
			"accounting_posted": cl.AccountingPosted,
			"errors":            errorsCount,
			"pending_class":     badge(cl.ZenvoicesPending, badgePending),
			"ready_class":       badge(cl.ZenvoicesReady, badgeReady),
			"posted_class":      badge(cl.AccountingPosted, badgePosted),
			"errors_class":      badge(errorsCount, badgeErrors),
		})
	}

	s := overview.Summary
	return map[string]interface{}{
		"has_clients": len(clients) > 0,
		"clients":     clients,
		"summary": map[string]interface{}{
			"totalClients":    s.TotalClients,
			"totalPending":    s.TotalPending,
			"totalProcessing": s.TotalProcessing,
			"totalReady":      s.TotalReady,
			"totalErrors":     s.TotalErrors,
			"totalPosted":     s.TotalPosted,
		},
		"last_updated": overview.LastUpdated.Format(time.RFC1123),
	}
}

func badge(count int, class string) string {
	if count == 0 {
		return badgeZero
	}
	return class
}
