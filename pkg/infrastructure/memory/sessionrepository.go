package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
	"github.com/carterpaul1/cis453l-project/pkg/domain/service"
)

var ErrSessionExists = errors.New("order session with this ID already exists")

// SessionRepository keeps live order sessions in process memory. An entry
// stays until Delete; nothing is evicted on idle.
type SessionRepository struct {
	mu    sync.RWMutex
	store map[uuid.UUID]*service.OrderSession
	order []uuid.UUID
}

var _ service.SessionRepository = &SessionRepository{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{store: make(map[uuid.UUID]*service.OrderSession)}
}

func (r *SessionRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *SessionRepository) Create(session *service.OrderSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[session.ID()]; exists {
		return ErrSessionExists
	}
	r.store[session.ID()] = session
	r.order = append(r.order, session.ID())
	return nil
}

func (r *SessionRepository) Find(id uuid.UUID) (*service.OrderSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if session, ok := r.store[id]; ok {
		return session, nil
	}
	return nil, model.ErrSessionNotFound
}

// FindAll returns the live sessions in creation order.
func (r *SessionRepository) FindAll() ([]*service.OrderSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*service.OrderSession, 0, len(r.order))
	for _, id := range r.order {
		sessions = append(sessions, r.store[id])
	}
	return sessions, nil
}

func (r *SessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.store, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
