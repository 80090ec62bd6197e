package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AndersonViniciusReis/acai-app/internal/cart"
	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService owns the live carts, keyed by session ID. Carts live in
// memory; the snapshot store is a best-effort backup so a restart does
// not wipe an in-progress order.
type CartService struct {
	mu        sync.Mutex
	carts     map[string]*cart.Cart
	catalog   *CatalogService
	snapshots repo.SnapshotStore
	logger    *zap.SugaredLogger
}

// CartSummary is what the storefront renders: the lines, the running
// total, the badge count, and any checkout form saved earlier in the
// session.
type CartSummary struct {
	Items     []domain.LineItem       `json:"items"`
	Total     decimal.Decimal         `json:"total"`
	ItemCount int                     `json:"item_count"`
	Customer  *domain.CustomerProfile `json:"customer,omitempty"`
}

func NewCartService(catalog *CatalogService, snapshots repo.SnapshotStore, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		carts:     make(map[string]*cart.Cart),
		catalog:   catalog,
		snapshots: snapshots,
		logger:    logger,
	}
}

// CreateSession mints a fresh session with an empty cart.
func (s *CartService) CreateSession() string {
	sessionID := uuid.NewString()

	s.mu.Lock()
	s.carts[sessionID] = cart.New()
	s.mu.Unlock()

	return sessionID
}

// session returns the cart for the given ID, restoring it from a
// snapshot when the process has restarted since the session began. A
// corrupt snapshot degrades to an empty cart.
func (s *CartService) session(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	if s.snapshots != nil {
		items, err := s.snapshots.LoadCart(sessionID)
		if err != nil {
			s.logger.Warnw("failed to restore cart snapshot", "session_id", sessionID, "error", err)
		}
		if len(items) > 0 {
			c := cart.Restore(items)
			s.carts[sessionID] = c
			return c
		}
	}

	c := cart.New()
	s.carts[sessionID] = c
	return c
}

func (s *CartService) AddItem(ctx context.Context, sessionID, productID, sizeLabel string, addOnIDs []string) (domain.LineItem, error) {
	catalog := s.catalog.Catalog(ctx)

	product, ok := catalog.Product(productID)
	if !ok {
		return domain.LineItem{}, fmt.Errorf("product %q: %w", productID, domain.ErrNotFound)
	}

	c := s.session(sessionID)

	item, err := c.Add(product, sizeLabel, addOnIDs, catalog)
	if err != nil {
		return domain.LineItem{}, err
	}

	s.persist(sessionID, c)

	return item, nil
}

func (s *CartService) SetQuantity(sessionID, itemID string, quantity int) error {
	c := s.session(sessionID)

	if err := c.SetQuantity(itemID, quantity); err != nil {
		return err
	}

	s.persist(sessionID, c)

	return nil
}

func (s *CartService) Items(sessionID string) []domain.LineItem {
	return s.session(sessionID).Items()
}

func (s *CartService) Summary(sessionID string) CartSummary {
	c := s.session(sessionID)

	return CartSummary{
		Items:     c.Items(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
		Customer:  s.Customer(sessionID),
	}
}

// Clear empties the cart and drops its snapshot. The saved checkout
// form stays so a returning customer does not retype the address.
func (s *CartService) Clear(sessionID string) {
	c := s.session(sessionID)
	c.Clear()

	if s.snapshots != nil {
		if err := s.snapshots.DeleteCart(sessionID); err != nil {
			s.logger.Warnw("failed to delete cart snapshot", "session_id", sessionID, "error", err)
		}
	}
}

func (s *CartService) SaveCustomer(sessionID string, profile domain.CustomerProfile) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveCustomer(sessionID, profile); err != nil {
		s.logger.Warnw("failed to save customer snapshot", "session_id", sessionID, "error", err)
	}
}

func (s *CartService) Customer(sessionID string) *domain.CustomerProfile {
	if s.snapshots == nil {
		return nil
	}
	profile, err := s.snapshots.LoadCustomer(sessionID)
	if err != nil {
		s.logger.Warnw("failed to load customer snapshot", "session_id", sessionID, "error", err)
		return nil
	}
	return profile
}

func (s *CartService) persist(sessionID string, c *cart.Cart) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveCart(sessionID, c.Items()); err != nil {
		s.logger.Warnw("failed to save cart snapshot", "session_id", sessionID, "error", err)
	}
}
