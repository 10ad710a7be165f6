package models

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord describes one uploaded binary and its share link. Records are
// append-only: created on a successful upload, never mutated. Expiry is
// advisory metadata; nothing deletes the binary when it passes.
type FileRecord struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID      *uuid.UUID `json:"user_id" gorm:"type:uuid;index"` // nil for anonymous uploads
	OriginalName string     `json:"file_name" gorm:"not null"`
	StoredName   string     `json:"stored_name" gorm:"uniqueIndex;not null"`
	SizeBytes    int64      `json:"file_size" gorm:"not null"`
	MimeType     string     `json:"file_type"`
	Path         string     `json:"-" gorm:"not null"` // disk path or object key, backend-local
	PublicURL    string     `json:"public_url" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt    time.Time  `json:"expires_at" gorm:"not null"`
}
