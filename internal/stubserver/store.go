package stubserver

import (
	"strings"
	"sync"
)

type account struct {
	email        string
	passwordHash string
	confirmed    bool
}

// accountStore keeps accounts in memory, keyed by normalized e-mail.
type accountStore struct {
	mu       sync.RWMutex
	accounts map[string]account
}

func newAccountStore() *accountStore {
	return &accountStore{accounts: make(map[string]account)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// create stores a new account. Returns [ErrEmailTaken] if the e-mail is
// already registered.
func (s *accountStore) create(email, passwordHash string, confirmed bool) error {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[key]; ok {
		return ErrEmailTaken
	}
	s.accounts[key] = account{email: key, passwordHash: passwordHash, confirmed: confirmed}

	return nil
}

func (s *accountStore) get(email string) (account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[normalizeEmail(email)]
	if !ok {
		return account{}, ErrAccountNotFound
	}

	return acc, nil
}

// confirm marks the account as confirmed.
func (s *accountStore) confirm(email string) error {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[key]
	if !ok {
		return ErrAccountNotFound
	}
	if acc.confirmed {
		return ErrAlreadyConfirmed
	}
	acc.confirmed = true
	s.accounts[key] = acc

	return nil
}

func (s *accountStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}
