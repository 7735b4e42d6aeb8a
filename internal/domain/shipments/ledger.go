package shipments

import "fmt"

// Ledger история отгрузок. Записи только добавляются.
type Ledger struct {
	items []Record
	bySN  map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{bySN: make(map[string]int)}
}

func (l *Ledger) Append(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("shipment id is empty")
	}
	l.items = append(l.items, r.clone())
	l.bySN[r.SerialNumber] = len(l.items) - 1
	return nil
}

// List копия истории в порядке отгрузки.
func (l *Ledger) List() []Record {
	out := make([]Record, len(l.items))
	for i, r := range l.items {
		out[i] = r.clone()
	}
	return out
}

// BySerial последняя отгрузка изделия с данным SN.
func (l *Ledger) BySerial(sn string) (Record, bool) {
	i, ok := l.bySN[sn]
	if !ok {
		return Record{}, false
	}
	return l.items[i].clone(), true
}

func (l *Ledger) Len() int { return len(l.items) }
