package materials

import (
	"fmt"
	"sort"
	"strings"
)

// Store хранилище записей склада в памяти.
// Не потокобезопасно: владелец (движок склада) держит общий мьютекс.
type Store struct {
	byID  map[string]Record
	order []string // порядок добавления; от него зависит подбор комплектующих
}

func NewStore(seed ...Record) (*Store, error) {
	s := &Store{byID: make(map[string]Record, len(seed))}
	for _, r := range seed {
		if err := s.Insert(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Get(id string) (Record, error) {
	r, ok := s.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Store) Insert(r Record) error {
	if r.MaterialID == "" {
		return fmt.Errorf("material id is empty")
	}
	if _, ok := s.byID[r.MaterialID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.MaterialID)
	}
	s.byID[r.MaterialID] = r
	s.order = append(s.order, r.MaterialID)
	return nil
}

// Put заменяет существующую запись, место в порядке сохраняется.
func (s *Store) Put(r Record) error {
	if _, ok := s.byID[r.MaterialID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, r.MaterialID)
	}
	s.byID[r.MaterialID] = r
	return nil
}

func (s *Store) Delete(id string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List копия всех записей в порядке добавления.
func (s *Store) List() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Store) Len() int { return len(s.order) }

// FirstOfKind первая (по порядку добавления) запись вида, подходящая под условие.
func (s *Store) FirstOfKind(kind Kind, ok func(Record) bool) (Record, bool) {
	for _, id := range s.order {
		r := s.byID[id]
		if r.Name != kind {
			continue
		}
		if ok == nil || ok(r) {
			return r, true
		}
	}
	return Record{}, false
}

// TotalsByKind остатки по видам каталога; виды без записей тоже попадают в результат.
func (s *Store) TotalsByKind() []KindTotal {
	idx := make(map[Kind]int, len(Catalog))
	out := make([]KindTotal, len(Catalog))
	for i, k := range Catalog {
		idx[k] = i
		out[i] = KindTotal{Kind: k}
	}
	for _, id := range s.order {
		r := s.byID[id]
		i, ok := idx[r.Name]
		if !ok {
			continue
		}
		out[i].Records++
		out[i].Quantity += r.Quantity
	}
	return out
}

// Search ищет записи по части номера или вида, без учёта регистра.
// Результат отсортирован по номеру.
func (s *Store) Search(q string) []Record {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []Record
	for _, id := range s.order {
		r := s.byID[id]
		if strings.Contains(strings.ToLower(id), q) || strings.Contains(strings.ToLower(string(r.Name)), q) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialID < out[j].MaterialID })
	return out
}
