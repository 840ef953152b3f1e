package snapshot

import (
	"context"
	"sort"
	"sync"
)

func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Memory is an in memory Store, mostly meant for tests and short lived processes.
type Memory struct {
	mutex   sync.RWMutex
	records map[string]Record
}

func (m *Memory) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.records[r.ID] = r
	return nil
}

func (m *Memory) Load(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound.F("id: %s", id)
	}
	return r, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.records[id]; !ok {
		return ErrNotFound.F("id: %s", id)
	}
	delete(m.records, id)
	return nil
}

// List returns the records ordered by their creation time.
func (m *Memory) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	rs := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		rs = append(rs, r)
	}
	sortRecords(rs)
	return rs, nil
}

func sortRecords(rs []Record) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.Before(rs[j].CreatedAt)
	})
}
