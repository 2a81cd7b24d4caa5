package client

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"
)

// MockFileStorage is an in-memory FileStorage for tests. Func fields override the default behavior.
type MockFileStorage struct {
	SaveFunc   func(ctx context.Context, name string, r io.Reader, contentType string) (string, int64, error)
	DeleteFunc func(ctx context.Context, url string) error
	ListFunc   func(ctx context.Context) ([]StoredFile, error)

	mu      sync.Mutex
	files   map[string][]byte
	modTime map[string]time.Time
	deleted []string
}

// NewMockFileStorage creates an empty MockFileStorage
func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{
		files:   make(map[string][]byte),
		modTime: make(map[string]time.Time),
	}
}

func (m *MockFileStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) (string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, r, contentType)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return "", 0, err
	}
	url := UploadURLPrefix + name
	m.Put(url, buf.Bytes(), time.Now())
	return url, n, nil
}

func (m *MockFileStorage) Delete(ctx context.Context, url string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, url)
	delete(m.modTime, url)
	m.deleted = append(m.deleted, url)
	return nil
}

func (m *MockFileStorage) List(ctx context.Context) ([]StoredFile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	files := make([]StoredFile, 0, len(m.files))
	for url := range m.files {
		files = append(files, StoredFile{URL: url, ModTime: m.modTime[url]})
	}
	return files, nil
}

// Put stores content under url with the given modification time
func (m *MockFileStorage) Put(url string, content []byte, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[url] = content
	m.modTime[url] = modTime
}

// Has reports whether url is stored
func (m *MockFileStorage) Has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[url]
	return ok
}

// Deleted returns the URLs passed to Delete, in call order
func (m *MockFileStorage) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}
