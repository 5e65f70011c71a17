// Путь: internal/repository/postgres/migration.go
package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Migration - один SQL файл схемы
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// LoadMigrations читает файлы вида 001_name.sql и сортирует их по версии
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing version prefix", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: invalid version: %w", name, err)
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// RunMigrations выполняет миграции базы данных, если они еще не были выполнены
func RunMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS) error {
	// Создаем таблицу для отслеживания миграций, если её нет
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS schema_migrations (
            version INT PRIMARY KEY,
            applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := LoadMigrations(fsys)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		applied, err := applyMigration(ctx, db, m)
		if err != nil {
			return err
		}
		if applied {
			log.Info().Int("version", m.Version).Str("file", m.Name).Msg("migration applied")
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, m Migration) (bool, error) {
	// Проверяем, выполнялась ли уже эта миграция
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM schema_migrations WHERE version = $1", m.Version)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, query := range splitStatements(m.SQL) {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return false, fmt.Errorf("failed to execute migration %s: %s\nError: %w", m.Name, query, err)
		}
	}

	// Записываем, что миграция выполнена
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
		return false, fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit migration: %w", err)
	}

	return true, nil
}

// splitStatements делит файл на отдельные запросы. Точка с запятой внутри литералов не поддерживается.
func splitStatements(content string) []string {
	var queries []string
	for _, query := range strings.Split(content, ";") {
		query = strings.TrimSpace(query)
		if query == "" || isCommentOnly(query) {
			continue
		}
		queries = append(queries, query)
	}
	return queries
}

func isCommentOnly(query string) bool {
	for _, line := range strings.Split(query, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}
