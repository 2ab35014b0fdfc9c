package directory

import (
	"context"
	"sync"

	"siproa/internal/models"
)

// MemoryStore is the first-generation user store: plain slices guarded by a
// mutex, with roles provisioned at construction. The mutex keeps the slices
// safe to touch concurrently; it does not close the duplicate-username gap in
// CreateUser, which spans two store calls.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  []models.User
	roles  []models.Role
	links  []models.UserRole
}

// NewMemoryStore pre-provisions the given role names, mirroring a relational
// backend whose role table is seeded ahead of time.
func NewMemoryStore(roleNames ...string) *MemoryStore {
	s := &MemoryStore{nextID: 1}
	for i, name := range roleNames {
		s.roles = append(s.roles, models.Role{ID: int64(i + 1), Name: name})
	}
	return s
}

func (s *MemoryStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) InsertUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) FindRoleByName(_ context.Context, name string) (*models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roles {
		if s.roles[i].Name == name {
			r := s.roles[i]
			return &r, nil
		}
	}
	return nil, ErrRoleNotFound
}

func (s *MemoryStore) LinkRole(_ context.Context, userID, roleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, models.UserRole{UserID: userID, RoleID: roleID})
	return nil
}

func (s *MemoryStore) RoleNamesFor(_ context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, link := range s.links {
		if link.UserID != userID {
			continue
		}
		for i := range s.roles {
			if s.roles[i].ID == link.RoleID {
				names = append(names, s.roles[i].Name)
			}
		}
	}
	return names, nil
}

// UserCount reports how many user rows exist. Test helper.
func (s *MemoryStore) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
