package vault

import (
	"errors"
	"fmt"
	"log"
)

// DefaultPrefix namespaces every key written by the storefront.
const DefaultPrefix = "ak_vault_"

// ReadStatus tells how a value was obtained by ReadOr.
type ReadStatus string

const (
	Loaded  ReadStatus = "loaded"
	Missing ReadStatus = "missing"
	Corrupt ReadStatus = "corrupt"
)

// Store mediates reads and writes to a Backend through the codec.
type Store struct {
	backend Backend
	prefix  string
	logger  *log.Logger
}

// NewStore wraps backend using DefaultPrefix. A nil logger uses log.Default().
func NewStore(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{backend: backend, prefix: DefaultPrefix, logger: logger}
}

// WithPrefix returns a copy of s writing under prefix.
func (s *Store) WithPrefix(prefix string) *Store {
	c := *s
	c.prefix = prefix
	return &c
}

// Key returns the namespaced form of key.
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Save encodes value and writes it under key.
func (s *Store) Save(key string, value any) error {
	encoded, err := Encode(value)
	if err != nil {
		s.logger.Printf("vault write error for %s: %v", key, err)
		return err
	}
	if err := s.backend.Set(s.Key(key), encoded); err != nil {
		s.logger.Printf("vault write error for %s: %v", key, err)
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Read decodes the value under key into out.
// It returns ErrNotFound for a missing key and an ErrCorrupt wrap for bad data.
func (s *Store) Read(key string, out any) error {
	raw, err := s.backend.Get(s.Key(key))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("reading %s: %w", key, err)
	}
	return Decode(raw, out)
}

// Clear removes key. Removing an absent key is not an error.
func (s *Store) Clear(key string) error {
	if err := s.backend.Delete(s.Key(key)); err != nil {
		s.logger.Printf("vault clear error for %s: %v", key, err)
		return fmt.Errorf("clearing %s: %w", key, err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// ReadOr reads key as a T and falls back to def when the value is absent or undecodable.
// Backend failures count as Corrupt: the caller sees defaults either way.
func ReadOr[T any](s *Store, key string, def T) (T, ReadStatus) {
	var v T
	err := s.Read(key, &v)
	switch {
	case err == nil:
		return v, Loaded
	case errors.Is(err, ErrNotFound):
		return def, Missing
	default:
		s.logger.Printf("vault read error for %s, using default: %v", key, err)
		return def, Corrupt
	}
}
