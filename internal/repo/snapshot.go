package repo

import "github.com/AndersonViniciusReis/acai-app/internal/domain"

// SnapshotStore is the best-effort local durability layer for in-progress
// carts and checkout forms. Implementations may lose data; callers must
// treat a failed load as an empty state, never as a fatal error.
type SnapshotStore interface {
	SaveCart(sessionID string, items []domain.LineItem) error
	LoadCart(sessionID string) ([]domain.LineItem, error)
	DeleteCart(sessionID string) error
	SaveCustomer(sessionID string, profile domain.CustomerProfile) error
	LoadCustomer(sessionID string) (*domain.CustomerProfile, error)
}
