// Package dashboard агрегирует статусы клиентов для дашборда и админских утилит
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"numberwise-dashboard/internal/domain"
	"numberwise-dashboard/internal/repository"
	repoInterface "numberwise-dashboard/internal/repository/interface"
)

// ErrClientNotFound - клиента с таким ID нет
var ErrClientNotFound = errors.New("client not found")

// Service - сервис дашборда
type Service struct {
	repo repoInterface.DashboardRepository
	now  func() time.Time
}

// NewService создает новый сервис
func NewService(repo repoInterface.DashboardRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Overview возвращает активных клиентов и итоги по ним
func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	clients, err := s.repo.ListClientOverviews(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.ClientOverview{}
	}

	return &domain.Overview{
		Clients:     clients,
		Summary:     Summarize(clients),
		LastUpdated: s.now().UTC(),
	}, nil
}

// Summarize складывает счетчики по всем клиентам
func Summarize(clients []domain.ClientOverview) domain.Summary {
	summary := domain.Summary{TotalClients: len(clients)}
	for _, c := range clients {
		summary.TotalPending += c.ZenvoicesPending + c.AccountingPending
		summary.TotalErrors += c.ZenvoicesFailed + c.AccountingErrors
		summary.TotalReady += c.ZenvoicesReady
		summary.TotalProcessing += c.ZenvoicesProcessing
		summary.TotalPosted += c.AccountingPosted
	}
	return summary
}

// ClientDetail возвращает клиента и ленту активности.
// ID, который не является UUID, не может существовать и сразу дает ErrClientNotFound.
func (s *Service) ClientDetail(ctx context.Context, clientID string) (*domain.ClientDetailResponse, error) {
	if _, err := uuid.Parse(clientID); err != nil {
		return nil, ErrClientNotFound
	}

	client, err := s.repo.FindClientDetail(ctx, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.ClientDetailResponse{
		Client:         client,
		RecentActivity: s.recentActivity(),
	}, nil
}

// recentActivity - явный маркер "не реализовано" вместо ленты событий.
// TODO: читать события из журнала обработки, когда Zenvoices начнет их публиковать.
func (s *Service) recentActivity() []domain.Activity {
	return []domain.Activity{{
		ID:          "activity-not-implemented",
		Type:        "not_implemented",
		Message:     "Activity tracking is not yet implemented",
		Timestamp:   s.now().UTC(),
		Implemented: false,
	}}
}

// DatabaseInfo проверяет доступность БД
func (s *Service) DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error) {
	return s.repo.DatabaseInfo(ctx)
}
