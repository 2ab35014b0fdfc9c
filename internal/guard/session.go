package guard

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// CachedUser is the user record the client keeps next to its token after a
// successful login or registration.
type CachedUser struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Session is the client-side cached state. It is a convenience copy only; the
// server never trusts it.
type Session struct {
	Token string      `json:"token"`
	User  *CachedUser `json:"user,omitempty"`
}

// SessionStore abstracts the client's local cache, the counterpart of the web
// frontend's localStorage.
type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileSessionStore keeps the session as a JSON file on disk.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load returns the cached session, or the zero session when no cache exists.
func (s *FileSessionStore) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *FileSessionStore) Save(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
