package repository

import (
	"fmt"

	"github.com/homeland-scout/pg-finder/internal/utils"
)

// Roles carried in the JWT role claim and enforced by middleware.
const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
)

// Account is a login identity. Owner accounts carry the owner id
// used to scope the owner portal; the admin account has none.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
	OwnerID      string
}

// AccountStore holds the seeded credential set. There is no
// registration path; the account population is fixed at boot.
type AccountStore struct {
	byUsername map[string]Account
}

// SeededAccount describes one account to create at boot, with its
// plain password; NewAccountStore hashes it and discards the plain
// text.
type SeededAccount struct {
	Username string
	Password string
	Role     string
	OwnerID  string
}

// NewAccountStore bcrypt-hashes each seeded password at the given
// cost and indexes the accounts by username.
func NewAccountStore(seed []SeededAccount, bcryptCost int) (*AccountStore, error) {
	s := &AccountStore{byUsername: make(map[string]Account, len(seed))}
	for _, a := range seed {
		hash, err := utils.HashPassword(a.Password, bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", a.Username, err)
		}
		s.byUsername[a.Username] = Account{
			Username:     a.Username,
			PasswordHash: hash,
			Role:         a.Role,
			OwnerID:      a.OwnerID,
		}
	}
	return s, nil
}

// Authenticate verifies the username/password pair and returns the
// matching account. Unknown usernames and wrong passwords both yield
// ErrInvalidCredentials.
func (s *AccountStore) Authenticate(username, password string) (Account, error) {
	a, ok := s.byUsername[username]
	if !ok || !utils.VerifyPassword(a.PasswordHash, password) {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// Get returns the account for a username, used when refreshing a
// session without re-verifying the password.
func (s *AccountStore) Get(username string) (Account, error) {
	a, ok := s.byUsername[username]
	if !ok {
		return Account{}, fmt.Errorf("account %q: %w", username, ErrNotFound)
	}
	return a, nil
}
