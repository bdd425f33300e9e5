// Package auth validates credentials and applies password changes against
// the account collection.
//
// Authenticate returns errors.ErrInvalidCredentials for every failed match,
// whether the username is unknown or the password is wrong, so callers
// cannot use it to discover which accounts exist. Passwords are compared as
// stored plaintext; there is no hashing, lockout or rate limiting.
//
// Authorization (which account may change which password) is left to the
// caller; see the workflows package.
package auth

import (
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/records"
)

// AccountStore is the subset of store.Accounts the service needs.
type AccountStore interface {
	LoadAll() ([]records.Account, error)
	SaveAll(accounts []records.Account) error
}

// Service authenticates users against an AccountStore.
type Service struct {
	accounts AccountStore
}

// NewService returns a Service backed by accounts.
func NewService(accounts AccountStore) *Service {
	return &Service{accounts: accounts}
}

// Authenticate returns the first account whose username and password both
// match exactly.
func (s *Service) Authenticate(username, password string) (records.Account, error) {
	accounts, err := s.accounts.LoadAll()
	if err != nil {
		return records.Account{}, err
	}
	for _, a := range accounts {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return records.Account{}, kerrors.ErrInvalidCredentials
}

// Register appends account to the collection. Usernames must be unique.
func (s *Service) Register(account records.Account) error {
	accounts, err := s.accounts.LoadAll()
	if err != nil {
		return err
	}
	if records.FindAccount(accounts, account.Username) >= 0 {
		return kerrors.ErrUsernameTaken
	}
	return s.accounts.SaveAll(append(accounts, account))
}

// ChangePassword sets the password of the first account named username.
func (s *Service) ChangePassword(username, newPassword string) error {
	return s.setPassword(newPassword, func(a records.Account) bool {
		return a.Username == username
	})
}

// ResetStudentPassword sets the password of the first student-role account
// named username. Professor accounts are never matched.
func (s *Service) ResetStudentPassword(username, newPassword string) error {
	return s.setPassword(newPassword, func(a records.Account) bool {
		return a.Username == username && a.Role.IsStudent()
	})
}

func (s *Service) setPassword(newPassword string, match func(records.Account) bool) error {
	accounts, err := s.accounts.LoadAll()
	if err != nil {
		return err
	}
	for i := range accounts {
		if match(accounts[i]) {
			accounts[i].Password = newPassword
			return s.accounts.SaveAll(accounts)
		}
	}
	return kerrors.ErrAccountNotFound
}
