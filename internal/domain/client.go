package domain

import "time"

// Учетные системы клиента (CHECK в таблице clients)
const (
	AccountingExactOnline = "exact_online"
	AccountingSnelStart   = "snelstart"
)

// Client - клиент бухгалтерской компании
type Client struct {
	ID               string    `db:"id" json:"id"`
	CompanyID        string    `db:"company_id" json:"company_id"`
	Name             string    `db:"name" json:"name"`
	ContactEmail     *string   `db:"contact_email" json:"contact_email"`
	AccountingSystem string    `db:"accounting_system" json:"accounting_system"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// ZenvoicesStatus - счетчики конвейера обработки счетов
type ZenvoicesStatus struct {
	ClientID    string    `db:"client_id" json:"client_id"`
	Pending     int       `db:"pending" json:"pending"`
	Processing  int       `db:"processing" json:"processing"`
	Ready       int       `db:"ready" json:"ready"`
	Failed      int       `db:"failed" json:"failed"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}

// AccountingStatus - счетчики проводок в учетной системе
type AccountingStatus struct {
	ClientID    string    `db:"client_id" json:"client_id"`
	Pending     int       `db:"pending" json:"pending"`
	Posted      int       `db:"posted" json:"posted"`
	Errors      int       `db:"errors" json:"errors"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}
