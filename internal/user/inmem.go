package user

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemStore keeps users in a map. It backs handler tests and is not
// meant for production use.
type InMemStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*User
}

func NewInMemStore() *InMemStore {
	return &InMemStore{users: make(map[uuid.UUID]*User)}
}

func (s *InMemStore) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *InMemStore) ByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *InMemStore) Create(ctx context.Context, email, firstName string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: firstName,
	}
	s.users[u.ID] = u

	cp := *u
	return &cp, nil
}

func (s *InMemStore) SetLoginMethod(ctx context.Context, id uuid.UUID, method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[id]; ok {
		u.LoginMethod = method
	}
	return nil
}

// Len reports how many users exist, for test assertions.
func (s *InMemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Get returns a copy of the stored user, for test assertions.
func (s *InMemStore) Get(id uuid.UUID) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}
