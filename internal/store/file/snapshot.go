// Package file is the best-effort durability layer for in-progress carts
// and checkout forms, one JSON file per session. It mirrors the
// storefront's old localStorage backup: losing a snapshot is acceptable,
// crashing over one is not.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
)

type SnapshotStore struct {
	dir string
	mu  sync.Mutex
}

func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	return &SnapshotStore{dir: dir}, nil
}

func (s *SnapshotStore) SaveCart(sessionID string, items []domain.LineItem) error {
	return s.save(s.cartPath(sessionID), items)
}

// LoadCart returns (nil, nil) when no snapshot exists. A snapshot that
// fails to decode is reported as an error; callers fall back to an empty
// cart.
func (s *SnapshotStore) LoadCart(sessionID string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	ok, err := s.load(s.cartPath(sessionID), &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

func (s *SnapshotStore) DeleteCart(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.cartPath(sessionID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) SaveCustomer(sessionID string, profile domain.CustomerProfile) error {
	return s.save(s.customerPath(sessionID), profile)
}

func (s *SnapshotStore) LoadCustomer(sessionID string) (*domain.CustomerProfile, error) {
	var profile domain.CustomerProfile
	ok, err := s.load(s.customerPath(sessionID), &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func (s *SnapshotStore) save(path string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// write-then-rename keeps a crashed write from corrupting the snapshot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

func (s *SnapshotStore) load(path string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("corrupt snapshot %s: %w", filepath.Base(path), err)
	}

	return true, nil
}

func (s *SnapshotStore) cartPath(sessionID string) string {
	return filepath.Join(s.dir, "cart-"+sessionID+".json")
}

func (s *SnapshotStore) customerPath(sessionID string) string {
	return filepath.Join(s.dir, "customer-"+sessionID+".json")
}
