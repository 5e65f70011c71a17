package domain

import "time"

// ClientOverview - строка обзора: активный клиент и оба статуса, NULL заменены нулями
type ClientOverview struct {
	ClientID              string     `db:"client_id" json:"client_id"`
	ClientName            string     `db:"client_name" json:"client_name"`
	ContactEmail          *string    `db:"contact_email" json:"contact_email"`
	AccountingSystem      *string    `db:"accounting_system" json:"accounting_system"`
	ZenvoicesPending      int        `db:"zenvoices_pending" json:"zenvoices_pending"`
	ZenvoicesProcessing   int        `db:"zenvoices_processing" json:"zenvoices_processing"`
	ZenvoicesReady        int        `db:"zenvoices_ready" json:"zenvoices_ready"`
	ZenvoicesFailed       int        `db:"zenvoices_failed" json:"zenvoices_failed"`
	AccountingPending     int        `db:"accounting_pending" json:"accounting_pending"`
	AccountingPosted      int        `db:"accounting_posted" json:"accounting_posted"`
	AccountingErrors      int        `db:"accounting_errors" json:"accounting_errors"`
	ZenvoicesLastUpdated  *time.Time `db:"zenvoices_last_updated" json:"zenvoices_last_updated"`
	AccountingLastUpdated *time.Time `db:"accounting_last_updated" json:"accounting_last_updated"`
}

// Summary - итоги по всем клиентам обзора
type Summary struct {
	TotalClients    int `json:"totalClients"`
	TotalPending    int `json:"totalPending"`
	TotalProcessing int `json:"totalProcessing"`
	TotalReady      int `json:"totalReady"`
	TotalErrors     int `json:"totalErrors"`
	TotalPosted     int `json:"totalPosted"`
}

// Overview - ответ /api/dashboard/overview
type Overview struct {
	Clients     []ClientOverview `json:"clients"`
	Summary     Summary          `json:"summary"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// ClientDetail - клиент с сырыми статусами. Отсутствующий статус остается nil.
type ClientDetail struct {
	ID                    string     `db:"id" json:"id"`
	CompanyID             *string    `db:"company_id" json:"company_id"`
	Name                  string     `db:"name" json:"name"`
	ContactEmail          *string    `db:"contact_email" json:"contact_email"`
	AccountingSystem      *string    `db:"accounting_system" json:"accounting_system"`
	IsActive              *bool      `db:"is_active" json:"is_active"`
	CreatedAt             *time.Time `db:"created_at" json:"created_at"`
	ZenvoicesPending      *int       `db:"zenvoices_pending" json:"zenvoices_pending"`
	ZenvoicesProcessing   *int       `db:"zenvoices_processing" json:"zenvoices_processing"`
	ZenvoicesReady        *int       `db:"zenvoices_ready" json:"zenvoices_ready"`
	ZenvoicesFailed       *int       `db:"zenvoices_failed" json:"zenvoices_failed"`
	ZenvoicesLastUpdated  *time.Time `db:"zenvoices_last_updated" json:"zenvoices_last_updated"`
	AccountingPending     *int       `db:"accounting_pending" json:"accounting_pending"`
	AccountingPosted      *int       `db:"accounting_posted" json:"accounting_posted"`
	AccountingErrors      *int       `db:"accounting_errors" json:"accounting_errors"`
	AccountingLastUpdated *time.Time `db:"accounting_last_updated" json:"accounting_last_updated"`
}

// Activity - запись ленты активности клиента
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Implemented bool      `json:"implemented"`
}

// ClientDetailResponse - ответ /api/dashboard/client/:clientId
type ClientDetailResponse struct {
	Client         *ClientDetail `json:"client"`
	RecentActivity []Activity    `json:"recentActivity"`
}

// DuplicateName - имя клиента, встречающееся больше одного раза
type DuplicateName struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}

// CleanupResult - итог удаления дубликатов
type CleanupResult struct {
	Status            string          `json:"status"`
	DuplicatesFound   []DuplicateName `json:"duplicatesFound"`
	RecordsRemoved    int64           `json:"recordsRemoved"`
	ClientCountBefore int             `json:"clientCountBefore"`
	ClientCountAfter  int             `json:"clientCountAfter"`
}

// ClientCount - диагностика количества клиентов
type ClientCount struct {
	TotalClients      int             `db:"total_clients" json:"totalClients"`
	UniqueClientNames int             `db:"unique_client_names" json:"uniqueClientNames"`
	Duplicates        []DuplicateName `db:"-" json:"duplicates"`
}

// DatabaseInfo - результат проверки соединения с БД
type DatabaseInfo struct {
	CurrentTime     time.Time `db:"now" json:"currentTime"`
	PostgresVersion string    `db:"version" json:"postgresVersion"`
}
