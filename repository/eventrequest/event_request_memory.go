package eventrequest

import (
	"context"
	"sync"
	"time"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
)

// Memory keeps event requests in process memory, in insertion order.
type Memory struct {
	mu       sync.RWMutex
	nextID   uint64
	requests map[uint64]*model.EventRequest
	order    []uint64
}

func NewMemoryEventRequestRepository() EventRequestRepository {
	return &Memory{
		nextID:   1,
		requests: make(map[uint64]*model.EventRequest),
	}
}

func (m *Memory) Create(_ context.Context, data *model.EventRequest) (*model.EventRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *data
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	stored.Status = constant.EventRequestStatusPending
	m.nextID++

	m.requests[stored.ID] = &stored
	m.order = append(m.order, stored.ID)

	out := stored
	return &out, nil
}

func (m *Memory) Get(_ context.Context, id uint64) (*model.EventRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	out := *r
	return &out, nil
}

func (m *Memory) List(_ context.Context, filter *model.EventRequestFilter) ([]model.EventRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]model.EventRequest, 0, len(m.order))
	for _, id := range m.order {
		r := m.requests[id]
		if filter != nil {
			if filter.UserID != 0 {
				if r.UserID != filter.UserID {
					continue
				}
			} else if filter.VendorID != 0 && r.VendorID != filter.VendorID {
				continue
			}
		}
		items = append(items, *r)
	}
	return items, nil
}

func (m *Memory) Update(_ context.Context, id uint64, patch *model.EventRequestPatch) (*model.EventRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	updated := *r
	patch.Apply(&updated)
	m.requests[id] = &updated

	out := updated
	return &out, nil
}
