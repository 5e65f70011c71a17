// Путь: internal/service/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"numberwise-dashboard/internal/domain"
)

// DuplicateInspector - источник списка дублирующихся имен клиентов
type DuplicateInspector interface {
	InspectDuplicates(ctx context.Context) ([]domain.DuplicateName, error)
}

// Scheduler периодически проверяет дубликаты клиентов и пишет предупреждение в лог.
// Сам ничего не удаляет: очистка остается ручной операцией.
type Scheduler struct {
	cron      *cron.Cron
	inspector DuplicateInspector
	timeout   time.Duration
}

// New создает планировщик с cron-выражением spec (поддерживаются дескрипторы вида @hourly)
func New(spec string, inspector DuplicateInspector) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		inspector: inspector,
		timeout:   30 * time.Second,
	}

	if _, err := s.cron.AddFunc(spec, s.checkDuplicates); err != nil {
		return nil, fmt.Errorf("invalid duplicate check schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop останавливает планировщик и ждет завершения текущей проверки или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) checkDuplicates() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.CheckDuplicates(ctx); err != nil {
		log.Error().Err(err).Msg("duplicate check failed")
	}
}

// CheckDuplicates выполняет одну проверку и возвращает найденные дубликаты
func (s *Scheduler) CheckDuplicates(ctx context.Context) ([]domain.DuplicateName, error) {
	duplicates, err := s.inspector.InspectDuplicates(ctx)
	if err != nil {
		return nil, err
	}

	if len(duplicates) == 0 {
		log.Debug().Msg("no duplicate clients found")
		return duplicates, nil
	}

	names := make([]string, 0, len(duplicates))
	extra := 0
	for _, d := range duplicates {
		names = append(names, d.Name)
		extra += d.Count - 1
	}

	log.Warn().
		Strs("names", names).
		Int("extra_records", extra).
		Msg("duplicate client names detected, run cleanup-duplicates to repair")

	return duplicates, nil
}
