package dashboard

import (
	"context"

	"github.com/rs/zerolog/log"

	"numberwise-dashboard/internal/domain"
)

// CleanupStatusCompleted - статус успешной очистки
const CleanupStatusCompleted = "completed"

// InspectDuplicates возвращает имена клиентов, встречающиеся больше одного раза
func (s *Service) InspectDuplicates(ctx context.Context) ([]domain.DuplicateName, error) {
	return s.repo.FindDuplicateNames(ctx)
}

// CleanupDuplicates оставляет по одному (самому раннему) клиенту на имя.
// Операция необратима, статусы удаленных клиентов удаляются каскадом.
func (s *Service) CleanupDuplicates(ctx context.Context) (*domain.CleanupResult, error) {
	result, err := s.repo.DeleteDuplicateClients(ctx)
	if err != nil {
		return nil, err
	}
	result.Status = CleanupStatusCompleted

	log.Warn().
		Int("duplicate_names", len(result.DuplicatesFound)).
		Int64("records_removed", result.RecordsRemoved).
		Int("client_count_before", result.ClientCountBefore).
		Int("client_count_after", result.ClientCountAfter).
		Msg("duplicate clients removed")

	return result, nil
}

// ClientCount возвращает диагностику количества клиентов
func (s *Service) ClientCount(ctx context.Context) (*domain.ClientCount, error) {
	return s.repo.CountClients(ctx)
}
