// Package assets turns uploaded images into stored, resized files and manages
// their lifecycle on a pluggable backend.
package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

type Store struct {
	backend Backend
	now     func() time.Time
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// Filename builds "<slug>-<unix millis>.jpg". Uniqueness relies on the
// millisecond timestamp only.
func (s *Store) Filename(nameHint string) string {
	return fmt.Sprintf("%s-%d%s", Slugify(nameHint), s.now().UnixMilli(), Ext)
}

// Save 轉檔後寫入 backend，回傳檔名供資料列引用
func (s *Store) Save(ctx context.Context, raw []byte, nameHint string) (string, error) {
	data, err := Transform(raw)
	if err != nil {
		return "", err
	}
	name := s.Filename(nameHint)
	if err := s.backend.Put(ctx, name, data, ContentType); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes name; a missing asset is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return s.backend.Delete(ctx, name)
}

func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}
	return s.backend.Open(ctx, name)
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return false
	}
	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}
