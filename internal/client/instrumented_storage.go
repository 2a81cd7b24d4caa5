package client

import (
	"context"
	"io"
	"time"
)

// StorageRecorder receives the outcome of every storage call
type StorageRecorder interface {
	RecordStorageOperation(backend, operation string, duration time.Duration, err error)
}

// InstrumentedStorage times the calls of another FileStorage
type InstrumentedStorage struct {
	next     FileStorage
	backend  string
	recorder StorageRecorder
}

// NewInstrumentedStorage wraps next. backend labels the recorded metrics ("local", "s3").
func NewInstrumentedStorage(next FileStorage, backend string, recorder StorageRecorder) *InstrumentedStorage {
	return &InstrumentedStorage{next: next, backend: backend, recorder: recorder}
}

func (s *InstrumentedStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) (string, int64, error) {
	start := time.Now()
	url, size, err := s.next.Save(ctx, name, r, contentType)
	s.recorder.RecordStorageOperation(s.backend, "save", time.Since(start), err)
	return url, size, err
}

func (s *InstrumentedStorage) Delete(ctx context.Context, url string) error {
	start := time.Now()
	err := s.next.Delete(ctx, url)
	s.recorder.RecordStorageOperation(s.backend, "delete", time.Since(start), err)
	return err
}

func (s *InstrumentedStorage) List(ctx context.Context) ([]StoredFile, error) {
	start := time.Now()
	files, err := s.next.List(ctx)
	s.recorder.RecordStorageOperation(s.backend, "list", time.Since(start), err)
	return files, err
}
