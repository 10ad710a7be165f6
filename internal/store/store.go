// Package store holds the metadata repositories behind the upload and auth
// flows. Two backends implement the same contracts: a flat JSON-record store
// (the default, no external services needed) and Postgres via GORM. Records
// are append-only; neither contract exposes update or delete.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned by UserStore.Create when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// FileStore persists uploaded-file metadata. Append must be durable before it
// returns, and concurrent appends must not lose records.
type FileStore interface {
	Append(ctx context.Context, record *models.FileRecord) error
	// ListByOwner returns the owner's records ordered newest-first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FileRecord, error)
}

// UserStore persists accounts. Users are created on signup and read on login;
// nothing updates or deletes them.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
