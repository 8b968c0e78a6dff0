package client

import (
	"sync"
)

// SessionHolder хранит текущую сессию пользователя. При любом ответе 401
// сессия сбрасывается целиком, и дальнейшие запросы идут без токена.
type SessionHolder struct {
	storage *SQLiteStorage
	mu      sync.RWMutex
	token   string
	email   string
}

func NewSessionHolder(storage *SQLiteStorage) *SessionHolder {
	holder := &SessionHolder{storage: storage}

	// Восстанавливаем сессию из локального хранилища
	if token, email, err := storage.LoadSession(); err == nil && token != "" {
		holder.token = token
		holder.email = email
	}

	return holder
}

func (s *SessionHolder) Set(token, email string) error {
	s.mu.Lock()
	s.token = token
	s.email = email
	s.mu.Unlock()

	return s.storage.SaveSession(token, email)
}

func (s *SessionHolder) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionHolder) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *SessionHolder) Authenticated() bool {
	return s.Token() != ""
}

// Clear удаляет сессию из памяти и локального хранилища.
func (s *SessionHolder) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()

	return s.storage.ClearSession()
}
