package store

import "github.com/PolarWolf314/campus/internal/records"

// Students is a Store of student records.
type Students = Store[records.Student]

// Accounts is a Store of account records.
type Accounts = Store[records.Account]

// NewStudents returns a student Store for path.
func NewStudents(path string, key []byte, opts ...Option) (*Students, error) {
	return New[records.Student](path, key, records.StudentCodec{}, opts...)
}

// NewAccounts returns an account Store for path.
func NewAccounts(path string, key []byte, opts ...Option) (*Accounts, error) {
	return New[records.Account](path, key, records.AccountCodec{}, opts...)
}

// LoadAll reads every record of the file at path with a one-off Store.
func LoadAll[T any](path string, key []byte, c records.Codec[T]) ([]T, error) {
	s, err := New(path, key, c)
	if err != nil {
		return nil, err
	}
	return s.LoadAll()
}

// SaveAll replaces the file at path with items using a one-off Store.
func SaveAll[T any](path string, key []byte, c records.Codec[T], items []T) error {
	s, err := New(path, key, c)
	if err != nil {
		return err
	}
	return s.SaveAll(items)
}

func LoadAllStudents(path string, key []byte) ([]records.Student, error) {
	return LoadAll[records.Student](path, key, records.StudentCodec{})
}

func SaveAllStudents(path string, key []byte, students []records.Student) error {
	return SaveAll[records.Student](path, key, records.StudentCodec{}, students)
}

func LoadAllAccounts(path string, key []byte) ([]records.Account, error) {
	return LoadAll[records.Account](path, key, records.AccountCodec{})
}

func SaveAllAccounts(path string, key []byte, accounts []records.Account) error {
	return SaveAll[records.Account](path, key, records.AccountCodec{}, accounts)
}
