package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"numberwise-dashboard/internal/domain"
	"numberwise-dashboard/internal/transport/middleware"
	"numberwise-dashboard/internal/web/templates"
)

type fakeOverview struct {
	overview *domain.Overview
	err      error
}

func (f *fakeOverview) Overview(ctx context.Context) (*domain.Overview, error) {
	return f.overview, f.err
}

func serveDashboard(t *testing.T, svc OverviewProvider) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestIDs())
	SetupRoutes(e, svc, templates.NewRenderer())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDashboard_RendersTotalsAndEscapesNames(t *testing.T) {
	exact := domain.AccountingExactOnline
	svc := &fakeOverview{overview: &domain.Overview{
		Clients: []domain.ClientOverview{
			{ClientID: "c1", ClientName: "Smith & Sons <B.V.>", AccountingSystem: &exact, ZenvoicesPending: 4, AccountingErrors: 1},
		},
		Summary:     domain.Summary{TotalClients: 1, TotalPending: 7, TotalProcessing: 2, TotalReady: 3, TotalErrors: 1},
		LastUpdated: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}}

	rec := serveDashboard(t, svc)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML, got %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`id="total-pending">7<`,
		`id="total-processing">2<`,
		`id="total-ready">3<`,
		`id="total-errors">1<`,
		"Smith &amp; Sons &lt;B.V.&gt;",
		"exact online",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
	if strings.Contains(body, "<B.V.>") {
		t.Fatal("client name rendered unescaped")
	}
}

func TestDashboard_NoClients(t *testing.T) {
	rec := serveDashboard(t, &fakeOverview{overview: &domain.Overview{Clients: []domain.ClientOverview{}}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No active clients") {
		t.Fatal("expected empty state row")
	}
}

func TestDashboard_StoreError(t *testing.T) {
	rec := serveDashboard(t, &fakeOverview{err: errors.New("pq: connection refused")})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "connection refused") {
		t.Fatal("error page leaks store error")
	}
	if !strings.Contains(body, rec.Header().Get(echo.HeaderXRequestID)) {
		t.Fatal("expected request id on error page")
	}
}

func TestBadge(t *testing.T) {
	if got := badge(0, badgeErrors); got != badgeZero {
		t.Fatalf("expected zero badge, got %q", got)
	}
	if got := badge(3, badgeErrors); got != badgeErrors {
		t.Fatalf("expected errors badge, got %q", got)
	}
}
