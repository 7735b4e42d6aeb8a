package inventory

import "time"

// Journal журнал движений по складу (только добавление).
type Journal struct {
	seq   int64
	items []Movement
}

func NewJournal() *Journal { return &Journal{} }

// delta > 0 => приход; delta < 0 => списание
func (j *Journal) apply(at time.Time, actor, materialID string, delta int, mtype MoveType, note string) Movement {
	j.seq++
	m := Movement{
		ID:         j.seq,
		CreatedAt:  at,
		Actor:      actor,
		MaterialID: materialID,
		Qty:        delta,
		Type:       mtype,
		Note:       note,
	}
	j.items = append(j.items, m)
	return m
}

func (j *Journal) Receive(at time.Time, actor, materialID string, qty int, note string) Movement {
	return j.apply(at, actor, materialID, qty, MoveIn, note)
}

func (j *Journal) WriteOff(at time.Time, actor, materialID string, qty int, note string) Movement {
	return j.apply(at, actor, materialID, -qty, MoveOut, note)
}

// List копия журнала в порядке записи.
func (j *Journal) List() []Movement {
	out := make([]Movement, len(j.items))
	copy(out, j.items)
	return out
}

// ByMaterial движения одного материала, в том числе уже удалённого.
func (j *Journal) ByMaterial(materialID string) []Movement {
	var out []Movement
	for _, m := range j.items {
		if m.MaterialID == materialID {
			out = append(out, m)
		}
	}
	return out
}

func (j *Journal) Len() int { return len(j.items) }
