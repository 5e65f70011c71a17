package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"numberwise-dashboard/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

var overviewColumns = []string{
	"client_id", "client_name", "contact_email", "accounting_system",
	"zenvoices_pending", "zenvoices_processing", "zenvoices_ready", "zenvoices_failed",
	"accounting_pending", "accounting_posted", "accounting_errors",
	"zenvoices_last_updated", "accounting_last_updated",
}

var detailColumns = []string{
	"id", "company_id", "name", "contact_email", "accounting_system", "is_active", "created_at",
	"zenvoices_pending", "zenvoices_processing", "zenvoices_ready", "zenvoices_failed", "zenvoices_last_updated",
	"accounting_pending", "accounting_posted", "accounting_errors", "accounting_last_updated",
}

func TestListClientOverviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	updated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.is_active = true")).
		WillReturnRows(sqlmock.NewRows(overviewColumns).
			AddRow("c1", "ABC Manufacturing Ltd", "finance@abcmanufacturing.nl", "exact_online", 2, 1, 5, 1, 3, 10, 0, updated, updated).
			AddRow("c2", "XYZ Services BV", nil, "snelstart", 0, 0, 0, 0, 0, 0, 0, nil, nil))

	clients, err := repo.ListClientOverviews(context.Background())
	if err != nil {
		t.Fatalf("ListClientOverviews: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}

	first := clients[0]
	if first.ClientName != "ABC Manufacturing Ltd" || first.ZenvoicesReady != 5 || first.AccountingPosted != 10 {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.ContactEmail == nil || *first.ContactEmail != "finance@abcmanufacturing.nl" {
		t.Fatalf("expected contact email, got %v", first.ContactEmail)
	}
	if first.ZenvoicesLastUpdated == nil || !first.ZenvoicesLastUpdated.Equal(updated) {
		t.Fatalf("expected zenvoices_last_updated %v, got %v", updated, first.ZenvoicesLastUpdated)
	}

	second := clients[1]
	if second.ContactEmail != nil || second.ZenvoicesLastUpdated != nil {
		t.Fatalf("expected NULL columns to stay nil: %+v", second)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListClientOverviews_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM clients c")).WillReturnRows(sqlmock.NewRows(overviewColumns))

	clients, err := repo.ListClientOverviews(context.Background())
	if err != nil {
		t.Fatalf("ListClientOverviews: %v", err)
	}
	if clients == nil || len(clients) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", clients)
	}
}

func TestFindClientDetail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	id := "0b9f6c1e-3a57-4d5e-8b44-1f6a4d1b2c3d"
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(detailColumns))

	_, err := repo.FindClientDetail(context.Background(), id)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindClientDetail_MissingStatusStaysNull(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	id := "0b9f6c1e-3a57-4d5e-8b44-1f6a4d1b2c3d"
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(detailColumns).AddRow(
			id, "company-1", "Tech Solutions Pro", nil, "exact_online", true, created,
			4, 1, 7, 0, created,
			nil, nil, nil, nil,
		))

	client, err := repo.FindClientDetail(context.Background(), id)
	if err != nil {
		t.Fatalf("FindClientDetail: %v", err)
	}
	if client.ZenvoicesReady == nil || *client.ZenvoicesReady != 7 {
		t.Fatalf("expected zenvoices_ready 7, got %v", client.ZenvoicesReady)
	}
	if client.AccountingPending != nil || client.AccountingPosted != nil || client.AccountingErrors != nil {
		t.Fatalf("expected accounting counters to be nil: %+v", client)
	}
}

func TestCountClients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT name)")).
		WillReturnRows(sqlmock.NewRows([]string{"total_clients", "unique_client_names"}).AddRow(7, 5))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > 1")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).
			AddRow("ABC Manufacturing Ltd", 2).
			AddRow("XYZ Services BV", 2))

	count, err := repo.CountClients(context.Background())
	if err != nil {
		t.Fatalf("CountClients: %v", err)
	}
	if count.TotalClients != 7 || count.UniqueClientNames != 5 {
		t.Fatalf("unexpected counts: %+v", count)
	}
	if len(count.Duplicates) != 2 || count.Duplicates[0].Count != 2 {
		t.Fatalf("unexpected duplicates: %+v", count.Duplicates)
	}
}

func TestDeleteDuplicateClients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clients")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > 1")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).AddRow("Acme", 3))
	mock.ExpectExec(regexp.QuoteMeta("SELECT DISTINCT ON (name) id")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clients")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	result, err := repo.DeleteDuplicateClients(context.Background())
	if err != nil {
		t.Fatalf("DeleteDuplicateClients: %v", err)
	}

	if result.RecordsRemoved != 2 {
		t.Fatalf("expected 2 records removed, got %d", result.RecordsRemoved)
	}
	if result.ClientCountBefore != 5 || result.ClientCountAfter != 3 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if int64(result.ClientCountAfter) != int64(result.ClientCountBefore)-result.RecordsRemoved {
		t.Fatalf("after != before - removed: %+v", result)
	}
	if len(result.DuplicatesFound) != 1 || result.DuplicatesFound[0].Name != "Acme" {
		t.Fatalf("unexpected duplicates: %+v", result.DuplicatesFound)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteDuplicateClients_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clients")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > 1")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).AddRow("Acme", 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clients")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := repo.DeleteDuplicateClients(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDatabaseInfo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("version()")).
		WillReturnRows(sqlmock.NewRows([]string{"now", "version"}).AddRow(now, "PostgreSQL 16.2"))

	info, err := repo.DatabaseInfo(context.Background())
	if err != nil {
		t.Fatalf("DatabaseInfo: %v", err)
	}
	if !info.CurrentTime.Equal(now) || info.PostgresVersion != "PostgreSQL 16.2" {
		t.Fatalf("unexpected info: %+v", info)
	}
}
