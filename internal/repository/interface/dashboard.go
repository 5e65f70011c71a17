package _interface

import (
	"context"

	"numberwise-dashboard/internal/domain"
)

// DashboardRepository - чтение статусов клиентов и административные операции
type DashboardRepository interface {
	// Обзор
	ListClientOverviews(ctx context.Context) ([]domain.ClientOverview, error)
	FindClientDetail(ctx context.Context, id string) (*domain.ClientDetail, error)

	// Администрирование
	FindDuplicateNames(ctx context.Context) ([]domain.DuplicateName, error)
	CountClients(ctx context.Context) (*domain.ClientCount, error)
	DeleteDuplicateClients(ctx context.Context) (*domain.CleanupResult, error)

	// Служебное
	DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error)
}
