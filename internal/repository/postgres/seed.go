package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"numberwise-dashboard/internal/domain"
)

// SeedOptions - параметры демо-наполнения
type SeedOptions struct {
	// AdminPassword - если пусто, демо-администратор не создается
	AdminPassword string
	// BcryptCost - стоимость хеширования пароля, 0 означает bcrypt.DefaultCost
	BcryptCost int
}

// SeedReport - что было вставлено за прогон
type SeedReport struct {
	ClientsInserted    int64
	StatusRowsInserted int64
	AdminUserCreated   bool
}

// Seeder создает обязательную компанию и демо-данные
type Seeder struct {
	db   *sqlx.DB
	rand *rand.Rand
}

// NewSeeder создает сидер. rnd можно передать с фиксированным seed для тестов.
func NewSeeder(db *sqlx.DB, rnd *rand.Rand) *Seeder {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Seeder{db: db, rand: rnd}
}

// EnsureCompany вставляет фиксированную компанию, если ее нет, и возвращает ее
func (s *Seeder) EnsureCompany(ctx context.Context) (*domain.Company, error) {
	company := domain.Company{Name: DefaultCompanyName, Domain: DefaultCompanyDomain}

	err := s.db.QueryRowxContext(ctx, `
        INSERT INTO companies (name, domain)
        VALUES ($1, $2)
        ON CONFLICT (domain) DO NOTHING
        RETURNING id, created_at
    `, company.Name, company.Domain).Scan(&company.ID, &company.CreatedAt)
	if err == nil {
		log.Info().Str("company_id", company.ID).Str("domain", company.Domain).Msg("company created")
		return &company, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	// Компания уже есть - получаем ее ID
	err = s.db.GetContext(ctx, &company, `
        SELECT id, name, domain, created_at FROM companies WHERE domain = $1
    `, DefaultCompanyDomain)
	if err != nil {
		return nil, fmt.Errorf("failed to find existing company: %w", err)
	}

	return &company, nil
}

// SeedDemo наполняет базу демо-клиентами и случайными статусами в одной транзакции.
// Повторный запуск ничего не добавляет.
func (s *Seeder) SeedDemo(ctx context.Context, companyID string, opts SeedOptions) (*SeedReport, error) {
	// Хешируем до начала транзакции, bcrypt медленный
	var passwordHash string
	if opts.AdminPassword != "" {
		cost := opts.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		passwordHash = string(hash)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	report := &SeedReport{}

	for _, client := range DemoClients {
		res, err := tx.ExecContext(ctx, `
            INSERT INTO clients (company_id, name, contact_email, accounting_system)
            SELECT $1::uuid, $2::varchar, $3::varchar, $4::varchar
            WHERE NOT EXISTS (
                SELECT 1 FROM clients WHERE company_id = $1::uuid AND name = $2::varchar
            )
        `, companyID, client.Name, client.ContactEmail, client.AccountingSystem)
		if err != nil {
			return nil, fmt.Errorf("failed to insert client %q: %w", client.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		report.ClientsInserted += n
	}

	var clientIDs []string
	err = tx.SelectContext(ctx, &clientIDs, `
        SELECT c.id
        FROM clients c
        LEFT JOIN zenvoices_status zs ON zs.client_id = c.id
        LEFT JOIN accounting_status acs ON acs.client_id = c.id
        WHERE zs.client_id IS NULL OR acs.client_id IS NULL
        ORDER BY c.created_at ASC, c.id ASC
        LIMIT $1
    `, demoStatusLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find clients without status: %w", err)
	}

	for _, id := range clientIDs {
		n, err := s.insertStatuses(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		report.StatusRowsInserted += n
	}

	if passwordHash != "" {
		created, err := insertAdminUser(ctx, tx, companyID, passwordHash)
		if err != nil {
			return nil, err
		}
		report.AdminUserCreated = created
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	return report, nil
}

func (s *Seeder) insertStatuses(ctx context.Context, tx *sqlx.Tx, clientID string) (int64, error) {
	zs := domain.ZenvoicesStatus{
		ClientID:   clientID,
		Pending:    s.pick(zenvoicesRanges.Pending),
		Processing: s.pick(zenvoicesRanges.Processing),
		Ready:      s.pick(zenvoicesRanges.Ready),
		Failed:     s.pick(zenvoicesRanges.Failed),
	}
	acs := domain.AccountingStatus{
		ClientID: clientID,
		Pending:  s.pick(accountingRanges.Pending),
		Posted:   s.pick(accountingRanges.Posted),
		Errors:   s.pick(accountingRanges.Errors),
	}

	res, err := tx.NamedExecContext(ctx, `
        INSERT INTO zenvoices_status (client_id, pending, processing, ready, failed)
        VALUES (:client_id, :pending, :processing, :ready, :failed)
        ON CONFLICT (client_id) DO NOTHING
    `, zs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert zenvoices status for %s: %w", clientID, err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	res, err = tx.NamedExecContext(ctx, `
        INSERT INTO accounting_status (client_id, pending, posted, errors)
        VALUES (:client_id, :pending, :posted, :errors)
        ON CONFLICT (client_id) DO NOTHING
    `, acs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert accounting status for %s: %w", clientID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return inserted + n, nil
}

func insertAdminUser(ctx context.Context, tx *sqlx.Tx, companyID, passwordHash string) (bool, error) {
	res, err := tx.ExecContext(ctx, `
        INSERT INTO users (company_id, email, password_hash, first_name, last_name, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (email) DO NOTHING
    `, companyID, DemoAdminEmail, passwordHash, DemoAdminFirstName, DemoAdminLastName, domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to insert admin user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Seeder) pick(r counterRange) int {
	return r.Min + s.rand.IntN(r.Span)
}

// BootstrapOptions - что делать при старте помимо миграций
type BootstrapOptions struct {
	Migrations fs.FS
	SeedDemo   bool
	Seed       SeedOptions
}

// Bootstrap применяет миграции, гарантирует наличие компании и, если включено, демо-данные
func Bootstrap(ctx context.Context, db *sqlx.DB, seeder *Seeder, opts BootstrapOptions) error {
	log.Info().Msg("initializing database")

	if err := RunMigrations(ctx, db, opts.Migrations); err != nil {
		return err
	}

	company, err := seeder.EnsureCompany(ctx)
	if err != nil {
		return err
	}

	if !opts.SeedDemo {
		log.Info().Msg("database initialized, demo data disabled")
		return nil
	}

	report, err := seeder.SeedDemo(ctx, company.ID, opts.Seed)
	if err != nil {
		return err
	}

	log.Info().
		Int64("clients_inserted", report.ClientsInserted).
		Int64("status_rows_inserted", report.StatusRowsInserted).
		Bool("admin_user_created", report.AdminUserCreated).
		Msg("database initialized with demo data")

	return nil
}
