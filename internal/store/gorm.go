package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormStore backs the repositories with Postgres. The unique index on email
// and per-row inserts give the duplicate and concurrent-append guarantees the
// JSON backend has to provide by hand.
type GormStore struct {
	db *gorm.DB
}

var (
	_ FileStore = (*GormStore)(nil)
	_ UserStore = (*GormStore)(nil)
)

// ConnectDatabase opens the Postgres connection and runs migrations.
func ConnectDatabase(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FileRecord{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Println("Successfully connected to database")
	return &GormStore{db: db}, nil
}

func (s *GormStore) Append(ctx context.Context, record *models.FileRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FileRecord, error) {
	records := make([]models.FileRecord, 0)
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) Create(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.WithContext(ctx).Create(user).Error
	default:
		return err
	}
}

func (s *GormStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
