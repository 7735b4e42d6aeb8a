package scheduler

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
	"github.com/Spok95/fuc-warehouse/internal/report"
	"github.com/Spok95/fuc-warehouse/internal/warehouse"
)

type Source interface {
	ListShipments() []shipments.Record
	Summary() warehouse.Summary
}

// Scheduler периодически выгружает журнал отгрузок в dir и пишет сводку по складу в лог.
type Scheduler struct {
	cron *cron.Cron
	src  Source
	dir  string
	log  *slog.Logger
	now  func() time.Time
}

func New(spec string, loc *time.Location, dir string, src Source, log *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		src:  src,
		dir:  dir,
		log:  log,
		now:  func() time.Time { return time.Now().In(loc) },
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.log.Info("starting scheduler", "dir", s.dir)
	s.cron.Start()
}

// Stop ждёт завершения запущенной выгрузки.
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	path, err := s.ExportShipments()
	if err != nil {
		s.log.Error("shipments export failed", "err", err)
		return
	}
	sum := s.src.Summary()
	s.log.Info("stock summary",
		"export", path,
		"records", sum.Records,
		"total_qty", sum.TotalQuantity,
		"warning", sum.Warning,
		"abnormal", sum.Abnormal,
		"shipments", sum.Shipments,
	)
}

// ExportShipments пишет файл shipments_<время>.xlsx и возвращает его путь.
func (s *Scheduler) ExportShipments() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if err := report.WriteShipments(buf, s.src.ListShipments()); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("shipments_%s.xlsx", s.now().Format("20060102_150405")))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
