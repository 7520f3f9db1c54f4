// Package archive uploads rendered reports to a blob store keyed by
// generated filenames.
package archive

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// BlobStore abstracts the blob service the archive uploads to.
type BlobStore interface {
	// Put stores data under name and returns the public URL of the blob.
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// ErrBlobNotFound is returned by the in-memory store when reading a missing
// blob.
var ErrBlobNotFound = errors.New("blob not found")

// InMemoryBlobStore keeps blobs in a map. Used by tests and by deployments
// without a blob service configured.
type InMemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewInMemoryBlobStore() *InMemoryBlobStore {
	return &InMemoryBlobStore{blobs: map[string][]byte{}}
}

func (s *InMemoryBlobStore) Put(_ context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[name] = stored
	return "memory://" + name, nil
}

// Get returns a stored blob. Test helper.
func (s *InMemoryBlobStore) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[name]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return data, nil
}

// Names lists stored blob names, ascending. Test helper.
func (s *InMemoryBlobStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.blobs))
	for name := range s.blobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
