package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/browbeat/event-marketplace/model"
	cerr "github.com/browbeat/event-marketplace/utils/errors"
)

// Memory keeps users in process memory, in insertion order.
type Memory struct {
	mu     sync.RWMutex
	nextID uint64
	users  map[uint64]*model.User
	order  []uint64
}

func NewMemoryUserRepository() UserRepository {
	return &Memory{
		nextID: 1,
		users:  make(map[uint64]*model.User),
	}
}

func (m *Memory) Create(_ context.Context, data *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.order {
		u := m.users[id]
		if strings.EqualFold(u.Username, data.Username) || strings.EqualFold(u.Email, data.Email) {
			return nil, cerr.ErrDuplicate
		}
	}

	stored := *data
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	m.nextID++

	m.users[stored.ID] = &stored
	m.order = append(m.order, stored.ID)

	out := stored
	return &out, nil
}

func (m *Memory) Get(_ context.Context, filter *model.UserFilter) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if filter.ID != 0 {
		u, ok := m.users[filter.ID]
		if !ok || !matches(u, filter) {
			return nil, nil
		}
		out := *u
		return &out, nil
	}

	for _, id := range m.order {
		u := m.users[id]
		if matches(u, filter) {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) Update(_ context.Context, id uint64, patch *model.UserPatch) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	updated := *u
	patch.Apply(&updated)

	for _, otherID := range m.order {
		if otherID == id {
			continue
		}
		other := m.users[otherID]
		if strings.EqualFold(other.Username, updated.Username) || strings.EqualFold(other.Email, updated.Email) {
			return nil, cerr.ErrDuplicate
		}
	}

	m.users[id] = &updated
	out := updated
	return &out, nil
}

func matches(u *model.User, filter *model.UserFilter) bool {
	if filter.Username != "" && !strings.EqualFold(u.Username, filter.Username) {
		return false
	}
	if filter.Email != "" && !strings.EqualFold(u.Email, filter.Email) {
		return false
	}
	return true
}
