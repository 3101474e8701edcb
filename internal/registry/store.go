package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"scheduling-simulator/internal/core"
)

// Store keeps one process list per algorithm in the line format read by Parse.
type Store interface {
	// Open returns a reader over the stored list, or an error wrapping
	// fs.ErrNotExist when nothing was ever stored for the algorithm.
	Open(algorithm core.Algorithm) (io.ReadCloser, error)
	Append(algorithm core.Algorithm, record []byte) error
}

// FileStore keeps each list in <Dir>/<store name>.txt.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) Path(algorithm core.Algorithm) string {
	return filepath.Join(s.Dir, algorithm.StoreName()+".txt")
}

func (s *FileStore) Open(algorithm core.Algorithm) (io.ReadCloser, error) {
	return os.Open(s.Path(algorithm))
}

func (s *FileStore) Append(algorithm core.Algorithm, record []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	f, err := os.OpenFile(s.Path(algorithm), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	if _, err := f.Write(record); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing store: %w", err)
	}
	return f.Close()
}

type MemoryStore struct {
	mu    sync.Mutex
	lists map[core.Algorithm][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[core.Algorithm][]byte)}
}

func (s *MemoryStore) Open(algorithm core.Algorithm) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[algorithm]
	if !ok {
		return nil, fmt.Errorf("%s: %w", algorithm.StoreName(), fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(list))), nil
}

func (s *MemoryStore) Append(algorithm core.Algorithm, record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[algorithm] = append(s.lists[algorithm], record...)
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
