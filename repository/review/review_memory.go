package review

import (
	"context"
	"sync"
	"time"

	"github.com/browbeat/event-marketplace/model"
)

type Memory struct {
	mu      sync.RWMutex
	nextID  uint64
	reviews []model.Review
}

func NewMemoryReviewRepository() ReviewRepository {
	return &Memory{nextID: 1}
}

func (m *Memory) Create(_ context.Context, data *model.Review) (*model.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *data
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	m.nextID++

	m.reviews = append(m.reviews, stored)

	out := stored
	return &out, nil
}

func (m *Memory) List(_ context.Context, filter *model.ReviewFilter) ([]model.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]model.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		if filter != nil {
			if filter.UserID != 0 {
				if r.UserID != filter.UserID {
					continue
				}
			} else if filter.VendorID != 0 && r.VendorID != filter.VendorID {
				continue
			}
		}
		items = append(items, r)
	}
	return items, nil
}
