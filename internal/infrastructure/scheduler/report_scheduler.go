// Package scheduler ejecuta el archivo nocturno del reporte diario.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// DayArchiver archiva el reporte de un día (implementado por AnalyticsUseCase).
type DayArchiver interface {
	ArchiveDay(ctx context.Context, day time.Time) error
}

// ReportScheduler archiva cada noche el reporte del día anterior.
type ReportScheduler struct {
	scheduler *gocron.Scheduler
	archiver  DayArchiver
	cronExpr  string
	log       *logger.Logger
	now       func() time.Time

	mu      sync.Mutex
	running bool
}

func NewReportScheduler(archiver DayArchiver, cronExpr string, log *logger.Logger) *ReportScheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportScheduler{
		scheduler: gocron.NewScheduler(time.Local),
		archiver:  archiver,
		cronExpr:  cronExpr,
		log:       log.Component("scheduler"),
		now:       time.Now,
	}
}

// Start registra el job y arranca el scheduler en segundo plano. Se detiene al cancelar ctx.
func (s *ReportScheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Cron(s.cronExpr).Do(func() {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Error().Err(err).Msg("error archivando reporte diario")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: cron %q: %w", s.cronExpr, err)
	}

	s.log.Info().Str("cron", s.cronExpr).Msg("archivo nocturno programado")
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("deteniendo scheduler")
		s.scheduler.Stop()
	}()
	return nil
}

// RunOnce archiva el día anterior. Si una ejecución sigue en curso no hace nada.
func (s *ReportScheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Warn().Msg("archivo en curso, se omite esta ejecución")
		return nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	yesterday := s.now().AddDate(0, 0, -1)
	started := time.Now()
	if err := s.archiver.ArchiveDay(ctx, yesterday); err != nil {
		return err
	}
	s.log.Info().
		Str("day", yesterday.Format("2006-01-02")).
		Dur("took", time.Since(started)).
		Msg("reporte diario archivado")
	return nil
}
