package database

import (
	"strings"
	"sync"
	"time"

	"go-food-ordering/models"
)

type UserStore struct {
	mu      sync.Mutex
	users   map[string]models.User
	byEmail map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// CreateUser stores a new user. Emails are unique, case-insensitively.
func (s *UserStore) CreateUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(*user.Email)
	if _, taken := s.byEmail[email]; taken {
		return ErrEmailTaken
	}
	s.byEmail[email] = user.User_id
	s.users[user.User_id] = user
	return nil
}

func (s *UserStore) GetUserByID(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *UserStore) GetUserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.users[id], nil
}

// UpdateTokens refreshes the stored access and refresh tokens after a login.
func (s *UserStore) UpdateTokens(userID, token, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Token = &token
	user.Refresh_Token = &refreshToken
	user.Updated_at = time.Now()
	s.users[userID] = user
	return nil
}
