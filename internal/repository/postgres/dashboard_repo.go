package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"numberwise-dashboard/internal/domain"
	"numberwise-dashboard/internal/repository"
	repoInterface "numberwise-dashboard/internal/repository/interface"
)

const (
	overviewQuery = `
        SELECT
            c.id AS client_id,
            c.name AS client_name,
            c.contact_email,
            c.accounting_system,
            COALESCE(zs.pending, 0) AS zenvoices_pending,
            COALESCE(zs.processing, 0) AS zenvoices_processing,
            COALESCE(zs.ready, 0) AS zenvoices_ready,
            COALESCE(zs.failed, 0) AS zenvoices_failed,
            COALESCE(acs.pending, 0) AS accounting_pending,
            COALESCE(acs.posted, 0) AS accounting_posted,
            COALESCE(acs.errors, 0) AS accounting_errors,
            zs.last_updated AS zenvoices_last_updated,
            acs.last_updated AS accounting_last_updated
        FROM clients c
        LEFT JOIN zenvoices_status zs ON zs.client_id = c.id
        LEFT JOIN accounting_status acs ON acs.client_id = c.id
        WHERE c.is_active = true
        ORDER BY c.name ASC
    `

	clientDetailQuery = `
        SELECT
            c.id,
            c.company_id,
            c.name,
            c.contact_email,
            c.accounting_system,
            c.is_active,
            c.created_at,
            zs.pending AS zenvoices_pending,
            zs.processing AS zenvoices_processing,
            zs.ready AS zenvoices_ready,
            zs.failed AS zenvoices_failed,
            zs.last_updated AS zenvoices_last_updated,
            acs.pending AS accounting_pending,
            acs.posted AS accounting_posted,
            acs.errors AS accounting_errors,
            acs.last_updated AS accounting_last_updated
        FROM clients c
        LEFT JOIN zenvoices_status zs ON zs.client_id = c.id
        LEFT JOIN accounting_status acs ON acs.client_id = c.id
        WHERE c.id = $1
    `

	duplicateNamesQuery = `
        SELECT name, COUNT(*) AS count
        FROM clients
        GROUP BY name
        HAVING COUNT(*) > 1
        ORDER BY count DESC, name ASC
    `

	countClientsQuery = `
        SELECT COUNT(*) AS total_clients, COUNT(DISTINCT name) AS unique_client_names
        FROM clients
    `

	// Оставляем по одной записи на имя: самую раннюю, при равенстве created_at - с меньшим id
	deleteDuplicatesQuery = `
        DELETE FROM clients
        WHERE id NOT IN (
            SELECT DISTINCT ON (name) id
            FROM clients
            ORDER BY name, created_at ASC, id ASC
        )
    `

	databaseInfoQuery = `SELECT NOW() AS now, version() AS version`
)

// DashboardRepository - PostgreSQL реализация
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository создает новый репозиторий
func NewDashboardRepository(db *sqlx.DB) repoInterface.DashboardRepository {
	return &DashboardRepository{db: db}
}

// ListClientOverviews возвращает активных клиентов со статусами, отсортированных по имени
func (r *DashboardRepository) ListClientOverviews(ctx context.Context) ([]domain.ClientOverview, error) {
	clients := make([]domain.ClientOverview, 0)
	if err := r.db.SelectContext(ctx, &clients, overviewQuery); err != nil {
		return nil, fmt.Errorf("failed to list client overviews: %w", err)
	}
	return clients, nil
}

// FindClientDetail находит клиента по ID вместе с сырыми статусами
func (r *DashboardRepository) FindClientDetail(ctx context.Context, id string) (*domain.ClientDetail, error) {
	var client domain.ClientDetail

	err := r.db.GetContext(ctx, &client, clientDetailQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", id, err)
	}

	return &client, nil
}

// FindDuplicateNames возвращает имена клиентов, встречающиеся больше одного раза
func (r *DashboardRepository) FindDuplicateNames(ctx context.Context) ([]domain.DuplicateName, error) {
	return findDuplicateNames(ctx, r.db)
}

// CountClients считает общее количество клиентов и количество уникальных имен
func (r *DashboardRepository) CountClients(ctx context.Context) (*domain.ClientCount, error) {
	var count domain.ClientCount
	if err := r.db.GetContext(ctx, &count, countClientsQuery); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	duplicates, err := findDuplicateNames(ctx, r.db)
	if err != nil {
		return nil, err
	}
	count.Duplicates = duplicates

	return &count, nil
}

// DeleteDuplicateClients удаляет дубликаты клиентов в одной транзакции.
// Статусы удаленных клиентов уходят каскадом.
func (r *DashboardRepository) DeleteDuplicateClients(ctx context.Context) (*domain.CleanupResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &domain.CleanupResult{}

	if err := tx.GetContext(ctx, &result.ClientCountBefore, `SELECT COUNT(*) FROM clients`); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	result.DuplicatesFound, err = findDuplicateNames(ctx, tx)
	if err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, deleteDuplicatesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to delete duplicate clients: %w", err)
	}
	result.RecordsRemoved, err = res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if err := tx.GetContext(ctx, &result.ClientCountAfter, `SELECT COUNT(*) FROM clients`); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cleanup: %w", err)
	}

	return result, nil
}

// DatabaseInfo проверяет соединение и возвращает время и версию сервера
func (r *DashboardRepository) DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error) {
	var info domain.DatabaseInfo
	if err := r.db.GetContext(ctx, &info, databaseInfoQuery); err != nil {
		return nil, fmt.Errorf("failed to query database info: %w", err)
	}
	return &info, nil
}

func findDuplicateNames(ctx context.Context, q sqlx.QueryerContext) ([]domain.DuplicateName, error) {
	duplicates := make([]domain.DuplicateName, 0)
	if err := sqlx.SelectContext(ctx, q, &duplicates, duplicateNamesQuery); err != nil {
		return nil, fmt.Errorf("failed to find duplicate client names: %w", err)
	}
	return duplicates, nil
}
