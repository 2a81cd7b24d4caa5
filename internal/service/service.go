package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskboard-api/internal/lock"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// Parent kinds used to key position locks
const (
	lockBoard     = "board"
	lockList      = "list"
	lockCard      = "card"
	lockChecklist = "checklist"
)

// lookupError converts a repository lookup failure: a missing row becomes NOT_FOUND, anything else INTERNAL_ERROR
func lookupError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(entity+" not found", "")
	}
	return response.NewInternalError("Failed to load "+strings.ToLower(entity), err.Error())
}

// asAppError passes AppErrors through and wraps any other error as INTERNAL_ERROR
func asAppError(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return response.NewInternalError(message, err.Error())
}

// requireTitle trims a required text field and rejects blank values
func requireTitle(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", response.NewValidationError(field+" cannot be empty", "")
	}
	return trimmed, nil
}

// appendOrPlace runs create in one transaction with the sibling position resolved.
// An explicit position is used as is. Otherwise the parent's position lock is held
// across the max+1 read and the insert so concurrent appends get distinct positions.
func appendOrPlace(
	ctx context.Context,
	locker lock.Locker,
	tx repository.Transactor,
	parentKind, parentID string,
	explicit *int,
	next func(ctx context.Context) (int, error),
	create func(ctx context.Context, position int) error,
) error {
	if explicit != nil {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return create(ctx, *explicit)
		})
	}

	unlock, err := locker.Lock(ctx, lock.Key(parentKind, parentID))
	if err != nil {
		return response.NewInternalError("Failed to acquire position lock", err.Error())
	}
	defer unlock()

	return tx.WithinTransaction(ctx, func(ctx context.Context) error {
		position, err := next(ctx)
		if err != nil {
			return response.NewInternalError("Failed to compute position", err.Error())
		}
		return create(ctx, position)
	})
}
