package auth

import (
	"context"
	"sync"
	"time"
)

var _ CredentialStore = (*TestStore)(nil)

// TestStore is an in-memory credential store for unit and dev testing.
type TestStore struct {
	mu       sync.Mutex
	accounts map[int]*Account
	nextID   int
}

func NewTestStore() *TestStore {
	return &TestStore{
		accounts: map[int]*Account{},
		nextID:   1,
	}
}

// Add stores a copy of the account and returns the assigned id.
func (s *TestStore) Add(account Account) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.ID == 0 {
		account.ID = s.nextID
	}
	if account.ID >= s.nextID {
		s.nextID = account.ID + 1
	}
	if account.Role == "" {
		account.Role = RoleAdmin
	}
	s.accounts[account.ID] = &account
	return account.ID
}

// Account returns a copy of the stored account.
func (s *TestStore) Account(id int) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return Account{}, false
	}
	return *a, true
}

func (s *TestStore) SetActive(id int, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		a.IsActive = active
	}
}

func (s *TestStore) SetResetToken(id int, resetToken string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		a.ResetToken = &resetToken
		a.ResetTokenExpiresAt = &expiresAt
	}
}

func (s *TestStore) GetByID(_ context.Context, id int) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *TestStore) GetActiveByUsername(_ context.Context, username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username == username && a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (s *TestStore) GetActiveByResetToken(_ context.Context, resetToken string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ResetToken != nil && *a.ResetToken == resetToken && a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (s *TestStore) UpdateLastLogin(_ context.Context, id int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	a.LastLogin = &at
	return nil
}

func (s *TestStore) ResetPassword(_ context.Context, id int, resetToken, passwordHash string, changedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok || !a.IsActive || a.ResetToken == nil || *a.ResetToken != resetToken {
		return ErrInvalidOrExpiredResetToken
	}
	if a.ResetTokenExpiresAt == nil || !changedAt.Before(*a.ResetTokenExpiresAt) {
		return ErrInvalidOrExpiredResetToken
	}

	a.PasswordHash = passwordHash
	a.PasswordChangedAt = changedAt
	a.ResetToken = nil
	a.ResetTokenExpiresAt = nil
	return nil
}
