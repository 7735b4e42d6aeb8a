package warehouse

import (
	"strings"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
)

// MarkAbnormal ручная пометка материала как неисправного. Доступна только из Normal.
func (e *Engine) MarkAbnormal(id, reason string) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.markAbnormal(id, reason)
	return r, e.finish("mark_abnormal", err, "material_id", id, "reason", reason)
}

func (e *Engine) markAbnormal(id, reason string) (materials.Record, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return materials.Record{}, invalid("reason", "is required")
	}
	r, err := e.store.Get(id)
	if err != nil {
		return materials.Record{}, err
	}
	if r.Status != materials.StatusNormal {
		return materials.Record{}, invalid("status", "only normal materials can be marked abnormal, %s is %s", id, r.Status)
	}

	r.Status = materials.StatusAbnormal
	r.AbnormalReason = reason
	r.LastUpdate = e.now()
	if err := e.store.Put(r); err != nil {
		return materials.Record{}, err
	}
	return r, nil
}

// ClearAbnormal снимает ручную пометку, статус снова считается по остатку.
func (e *Engine) ClearAbnormal(id string) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.clearAbnormal(id)
	return r, e.finish("clear_abnormal", err, "material_id", id)
}

func (e *Engine) clearAbnormal(id string) (materials.Record, error) {
	r, err := e.store.Get(id)
	if err != nil {
		return materials.Record{}, err
	}
	if !r.Pinned() {
		return materials.Record{}, invalid("status", "%s is not marked abnormal", id)
	}

	r.AbnormalReason = ""
	r.Status = materials.DeriveStatus(r.Quantity, false)
	r.LastUpdate = e.now()
	if err := e.store.Put(r); err != nil {
		return materials.Record{}, err
	}
	return r, nil
}
