// Package warehouse учёт материалов склада и отгрузка готовых изделий.
//
// Все команды выполняются под одним мьютексом: проверка и списание
// комплектующих при отгрузке видят согласованное состояние склада.
package warehouse

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/fuc-warehouse/internal/domain/inventory"
	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
)

// Recorder принимает события для метрик.
type Recorder interface {
	Command(name, result string)
	Shipped()
	Stock(totals []materials.KindTotal)
}

type nopRecorder struct{}

func (nopRecorder) Command(string, string) {}
func (nopRecorder) Shipped() {}
func (nopRecorder) Stock([]materials.KindTotal) {}

type Engine struct {
	mu      sync.Mutex
	store   *materials.Store
	ledger  *shipments.Ledger
	journal *inventory.Journal

	log   *slog.Logger
	rec   Recorder
	now   func() time.Time
	newID func() string
}

type Option func(*Engine)

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func WithRecorder(rec Recorder) Option {
	return func(e *Engine) {
		if rec != nil {
			e.rec = rec
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator генератор номеров отгрузок (по умолчанию UUID).
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New собирает движок над готовым хранилищем и журналом отгрузок.
// nil-аргументы заменяются пустыми.
func New(store *materials.Store, ledger *shipments.Ledger, opts ...Option) *Engine {
	if store == nil {
		store, _ = materials.NewStore()
	}
	if ledger == nil {
		ledger = shipments.NewLedger()
	}
	e := &Engine{
		store:   store,
		ledger:  ledger,
		journal: inventory.NewJournal(),
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		rec:     nopRecorder{},
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rec.Stock(e.store.TotalsByKind())
	return e
}

// finish фиксирует результат команды в логах и метриках. Вызывается под мьютексом.
func (e *Engine) finish(cmd string, err error, attrs ...any) error {
	e.rec.Command(cmd, resultOf(err))
	if err != nil {
		e.log.Warn("command rejected", append([]any{"cmd", cmd, "err", err}, attrs...)...)
		return err
	}
	e.rec.Stock(e.store.TotalsByKind())
	e.log.Info("command applied", append([]any{"cmd", cmd}, attrs...)...)
	return nil
}

func (e *Engine) GetMaterial(id string) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Get(id)
}

// ListMaterials снимок склада в порядке добавления.
func (e *Engine) ListMaterials() []materials.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.List()
}

func (e *Engine) SearchMaterials(q string) []materials.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Search(q)
}

// ListShipments история отгрузок для отчётов и выгрузки.
func (e *Engine) ListShipments() []shipments.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.List()
}

// Movements журнал движений; с materialID только по одному материалу.
func (e *Engine) Movements(materialID string) []inventory.Movement {
	e.mu.Lock()
	defer e.mu.Unlock()
	if materialID == "" {
		return e.journal.List()
	}
	return e.journal.ByMaterial(materialID)
}
