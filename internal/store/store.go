package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/campus/internal/codec"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	logger "github.com/PolarWolf314/campus/internal/logging"
	"github.com/PolarWolf314/campus/internal/records"
)

// filePerm is applied to record files; they hold passwords.
const filePerm = 0600

type options struct {
	atomic bool
	log    logger.Logger
}

// Option configures a Store.
type Option func(*options)

// WithAtomicWrites makes SaveAll write a temporary file and rename it over
// the target instead of truncating the target in place.
func WithAtomicWrites() Option {
	return func(o *options) { o.atomic = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Store loads and saves the full collection of one record type.
type Store[T any] struct {
	path   string
	cipher *codec.XORCipher
	codec  records.Codec[T]
	opts   options
}

// New returns a Store for the file at path. It returns errors.ErrEmptyKey
// when key is empty.
func New[T any](path string, key []byte, c records.Codec[T], opts ...Option) (*Store[T], error) {
	cipher, err := codec.NewXORCipher(key)
	if err != nil {
		return nil, err
	}
	s := &Store[T]{path: path, cipher: cipher, codec: c}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// LoadAll reads every record from the backing file.
func (s *Store[T]) LoadAll() ([]T, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.opts.log.Debugf("Record file %s does not exist, starting with an empty collection", s.path)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", kerrors.ErrStoreIO, s.path, err)
	}
	defer f.Close()

	items, err := s.decode(f)
	if err != nil {
		return nil, err
	}
	s.opts.log.Debugf("Loaded %d records from %s", len(items), s.path)
	return items, nil
}

func (s *Store[T]) decode(r io.Reader) ([]T, error) {
	items := []T{}
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("%w: reading %s: %w", kerrors.ErrStoreIO, s.path, readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line != "" {
			item, err := s.decodeLine(line)
			if err != nil {
				var ferr *kerrors.FormatError
				if errors.As(err, &ferr) {
					return nil, fmt.Errorf("loading %s: %w", s.path, ferr.AtLine(lineNo))
				}
				return nil, fmt.Errorf("loading %s line %d: %w", s.path, lineNo, err)
			}
			items = append(items, item)
		}

		if readErr != nil {
			break
		}
	}
	return items, nil
}

func (s *Store[T]) decodeLine(line string) (T, error) {
	ciphered, err := codec.FromText(line)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.codec.Deserialize(string(s.cipher.Decode(ciphered)))
}

// SaveAll replaces the backing file with items, one line per record in
// slice order.
func (s *Store[T]) SaveAll(items []T) error {
	var buf bytes.Buffer
	for _, item := range items {
		buf.WriteString(codec.ToText(s.cipher.Encode([]byte(s.codec.Serialize(item)))))
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %w", kerrors.ErrStoreIO, s.path, err)
	}

	write := s.truncateWrite
	if s.opts.atomic {
		write = s.renameWrite
	}
	if err := write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing %s: %w", kerrors.ErrStoreIO, s.path, err)
	}

	s.opts.log.Debugf("Saved %d records to %s", len(items), s.path)
	return nil
}

func (s *Store[T]) truncateWrite(data []byte) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store[T]) renameWrite(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	// Remove is a no-op once the rename has succeeded.
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// Update loads the collection, applies fn and saves the result. Nothing is
// written when fn returns an error.
func (s *Store[T]) Update(fn func(items []T) ([]T, error)) error {
	items, err := s.LoadAll()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return s.SaveAll(items)
}
