package warehouse

import "github.com/Spok95/fuc-warehouse/internal/domain/materials"

// Summary сводка по складу для главного экрана и отчётов.
type Summary struct {
	Records       int
	TotalQuantity int
	Warning       int
	Abnormal      int
	ByKind        []materials.KindTotal
	Shipments     int
}

func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Summary{
		ByKind:    e.store.TotalsByKind(),
		Shipments: e.ledger.Len(),
	}
	for _, r := range e.store.List() {
		s.Records++
		s.TotalQuantity += r.Quantity
		switch r.Status {
		case materials.StatusWarning:
			s.Warning++
		case materials.StatusAbnormal:
			s.Abnormal++
		}
	}
	return s
}
