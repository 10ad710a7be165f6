package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rohits-web03/qrdrop/internal/models"
	"github.com/spf13/afero"
)

// JSONStore keeps users and file records as two pretty-printed JSON arrays on
// disk. It is the "mock database" backend: good for a single process at low
// request volume, zero operational dependencies. All writers for a collection
// serialize behind one mutex, so the load-append-rewrite cycle cannot drop
// records under concurrent uploads.
type JSONStore struct {
	fs afero.Fs

	usersMu   sync.Mutex
	usersPath string

	filesMu   sync.Mutex
	filesPath string
}

var (
	_ FileStore = (*JSONStore)(nil)
	_ UserStore = (*JSONStore)(nil)
)

// NewJSONStore opens (creating if needed) users.json and files.json under dir.
func NewJSONStore(fs afero.Fs, dir string) (*JSONStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &JSONStore{
		fs:        fs,
		usersPath: filepath.Join(dir, "users.json"),
		filesPath: filepath.Join(dir, "files.json"),
	}
	for _, path := range []string{s.usersPath, s.filesPath} {
		if ok, _ := afero.Exists(fs, path); !ok {
			if err := afero.WriteFile(fs, path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", path, err)
			}
		}
	}
	return s, nil
}

func (s *JSONStore) Append(ctx context.Context, record *models.FileRecord) error {
	s.filesMu.Lock()
	defer s.filesMu.Unlock()

	var records []models.FileRecord
	if err := s.read(s.filesPath, &records); err != nil {
		return err
	}
	records = append(records, *record)
	return s.write(s.filesPath, records)
}

func (s *JSONStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FileRecord, error) {
	s.filesMu.Lock()
	defer s.filesMu.Unlock()

	var records []models.FileRecord
	if err := s.read(s.filesPath, &records); err != nil {
		return nil, err
	}

	owned := make([]models.FileRecord, 0)
	for _, r := range records {
		if r.OwnerID != nil && *r.OwnerID == ownerID {
			owned = append(owned, r)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (s *JSONStore) Create(ctx context.Context, user *models.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	var users []models.User
	if err := s.read(s.usersPath, &users); err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	users = append(users, *user)
	return s.write(s.usersPath, users)
}

func (s *JSONStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	var users []models.User
	if err := s.read(s.usersPath, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) read(path string, out any) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// write replaces the collection file via a temp file and rename, so a crash
// mid-write never leaves a truncated database behind.
func (s *JSONStore) write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
