package metrics

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"
)

// RecordStorageOperation records a file storage call made against backend ("local", "s3")
func (m *Metrics) RecordStorageOperation(backend, operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		status := "success"
		if err != nil {
			status = "error"
		}

		m.StorageOperationsTotal.WithLabelValues(backend, operation, status).Inc()
		m.StorageOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(backend, operation, storageErrorType(err)).Inc()
		}
	})
}

// storageErrorType categorizes a storage error for the error_type label
func storageErrorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, fs.ErrNotExist):
		return "not_found"
	case errors.Is(err, fs.ErrPermission):
		return "permission_denied"
	case errors.Is(err, fs.ErrExist):
		return "already_exists"
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "AccessDenied"):
		return "permission_denied"
	case strings.Contains(msg, "NoSuchBucket"), strings.Contains(msg, "NoSuchKey"):
		return "not_found"
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return "connection_error"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	}
	return "storage_error"
}
