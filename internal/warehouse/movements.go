package warehouse

import (
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
)

type AddMaterialInput struct {
	Name       materials.Kind
	MaterialID string // не нужен для корпусов, номер генерируется
	Quantity   int
}

// AddMaterial заводит новую запись. Платы — ровно 1 шт. с номером оператора,
// корпуса — произвольное количество с синтетическим номером.
func (e *Engine) AddMaterial(in AddMaterialInput) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.addMaterial(in)
	return r, e.finish("add_material", err, "material_id", r.MaterialID, "kind", in.Name, "qty", in.Quantity)
}

func (e *Engine) addMaterial(in AddMaterialInput) (materials.Record, error) {
	if !in.Name.Valid() {
		return materials.Record{}, invalid("name", "unknown material kind %q", in.Name)
	}
	id := strings.TrimSpace(in.MaterialID)

	switch {
	case in.Name.Serialized():
		if id == "" {
			return materials.Record{}, invalid("material_id", "required for %s", in.Name)
		}
		if in.Quantity != 1 {
			return materials.Record{}, invalid("quantity", "must be exactly 1 for %s, got %d", in.Name, in.Quantity)
		}
	case in.Name.GeneratedID():
		if in.Quantity < 0 {
			return materials.Record{}, invalid("quantity", "must not be negative, got %d", in.Quantity)
		}
	default:
		if id == "" {
			return materials.Record{}, invalid("material_id", "required for %s", in.Name)
		}
		if in.Quantity < 0 {
			return materials.Record{}, invalid("quantity", "must not be negative, got %d", in.Quantity)
		}
	}

	now := e.now()
	if in.Name.GeneratedID() {
		id = e.syntheticID(in.Name, now)
	}

	r := materials.Record{
		MaterialID: id,
		Name:       in.Name,
		Quantity:   in.Quantity,
		Status:     materials.StatusNormal,
		LastUpdate: now,
	}
	if err := e.store.Insert(r); err != nil {
		return materials.Record{}, err
	}
	if r.Quantity > 0 {
		e.journal.Receive(now, "", id, r.Quantity, "material added")
	}
	return r, nil
}

// syntheticID вид + миллисекунды; при совпадении добавляется суффикс.
func (e *Engine) syntheticID(kind materials.Kind, at time.Time) string {
	base := fmt.Sprintf("%s-%d", kind, at.UnixMilli())
	id := base
	for n := 2; e.store.Has(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// IssueStock списание со склада. Больше остатка списать нельзя.
func (e *Engine) IssueStock(id string, qty int) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.issueStock(id, qty)
	return r, e.finish("issue_stock", err, "material_id", id, "qty", qty)
}

func (e *Engine) issueStock(id string, qty int) (materials.Record, error) {
	if qty <= 0 {
		return materials.Record{}, invalid("quantity", "must be > 0, got %d", qty)
	}
	r, err := e.store.Get(id)
	if err != nil {
		return materials.Record{}, err
	}
	if qty > r.Quantity {
		return materials.Record{}, &InsufficientStockError{
			MaterialID: r.MaterialID,
			Kind:       r.Name,
			Requested:  qty,
			Available:  r.Quantity,
		}
	}

	now := e.now()
	r.Quantity -= qty
	r.Status = materials.DeriveStatus(r.Quantity, r.Pinned())
	r.LastUpdate = now
	if err := e.store.Put(r); err != nil {
		return materials.Record{}, err
	}
	e.journal.WriteOff(now, "", id, qty, "issue")
	return r, nil
}

// ReceiveStock приход на существующую запись. Платам приход не положен.
func (e *Engine) ReceiveStock(id string, qty int) (materials.Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.receiveStock(id, qty)
	return r, e.finish("receive_stock", err, "material_id", id, "qty", qty)
}

func (e *Engine) receiveStock(id string, qty int) (materials.Record, error) {
	if qty <= 0 {
		return materials.Record{}, invalid("quantity", "must be > 0, got %d", qty)
	}
	r, err := e.store.Get(id)
	if err != nil {
		return materials.Record{}, err
	}
	if r.Name.Serialized() {
		return materials.Record{}, invalid("material_id", "%s is a serialized %s and holds a single unit", id, r.Name)
	}

	now := e.now()
	r.Quantity += qty
	r.Status = materials.DeriveStatus(r.Quantity, r.Pinned())
	r.LastUpdate = now
	if err := e.store.Put(r); err != nil {
		return materials.Record{}, err
	}
	e.journal.Receive(now, "", id, qty, "receive")
	return r, nil
}

// DeleteMaterial удаляет запись сразу и безусловно; остаток уходит в журнал как списание.
func (e *Engine) DeleteMaterial(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.deleteMaterial(id)
	return e.finish("delete_material", err, "material_id", id)
}

func (e *Engine) deleteMaterial(id string) error {
	r, err := e.store.Get(id)
	if err != nil {
		return err
	}
	if err := e.store.Delete(id); err != nil {
		return err
	}
	if r.Quantity > 0 {
		e.journal.WriteOff(e.now(), "", id, r.Quantity, "material deleted")
	}
	return nil
}
