package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/queue"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	products []domain.Product
	addOns   []domain.AddOn
	err      error
}

func (f *fakeCatalogRepo) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogRepo) GetAddOns(ctx context.Context) ([]domain.AddOn, error) {
	return f.addOns, f.err
}

func (f *fakeCatalogRepo) ReplaceCatalog(ctx context.Context, products []domain.Product, addOns []domain.AddOn) error {
	f.products = products
	f.addOns = addOns
	return nil
}

type fakeOrderRepo struct {
	orders     map[primitive.ObjectID]*domain.Order
	failCreate bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if f.failCreate {
		return errors.New("write failed")
	}
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if status != nil && order.Status != *status {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.CustomerID == customerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	copied := *order
	return &copied, nil
}

type fakeCustomerRepo struct {
	profiles map[primitive.ObjectID]*domain.CustomerProfile
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{profiles: make(map[primitive.ObjectID]*domain.CustomerProfile)}
}

func (f *fakeCustomerRepo) UpsertByPhone(ctx context.Context, profile *domain.CustomerProfile) (primitive.ObjectID, error) {
	for id, stored := range f.profiles {
		if stored.Phone == profile.Phone {
			stored.Name = profile.Name
			stored.Address = profile.Address
			stored.Neighborhood = profile.Neighborhood
			stored.Reference = profile.Reference
			profile.ID = id
			return id, nil
		}
	}
	id := primitive.NewObjectID()
	stored := *profile
	stored.ID = id
	f.profiles[id] = &stored
	profile.ID = id
	return id, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CustomerProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.CustomerProfile, error) {
	for _, profile := range f.profiles {
		if profile.Phone == phone {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeBroker struct {
	published map[string][][]byte
	failAll   bool
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][][]byte)}
}

func (f *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	if f.failAll {
		return errors.New("broker down")
	}
	f.published[queueName] = append(f.published[queueName], message)
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (f *fakeBroker) Close() error { return nil }

type fakeDispatcher struct {
	links []string
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, orderID, link string) error {
	f.links = append(f.links, link)
	return nil
}

func newTestServices(t *testing.T, orderRepo *fakeOrderRepo, broker *fakeBroker) (*OrderService, *CartService, *fakeCustomerRepo) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	seed := domain.SeedCatalog()
	catalogSvc := NewCatalogService(&fakeCatalogRepo{products: seed.Products, addOns: seed.AddOns}, nil, nil, broker, nil, logger)
	carts := NewCartService(catalogSvc, nil, logger)
	customers := newFakeCustomerRepo()
	orders := NewOrderService(orderRepo, customers, carts, catalogSvc, broker, &fakeDispatcher{}, "5511999999999", logger)

	return orders, carts, customers
}

func validProfile() domain.CustomerProfile {
	return domain.CustomerProfile{
		Name:          "Maria Silva",
		Phone:         "11987654321",
		Address:       "Rua das Flores, 123",
		Neighborhood:  "Centro",
		PaymentMethod: "Pix",
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	sessionID := carts.CreateSession()

	_, err := orders.Submit(context.Background(), sessionID, validProfile())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitMissingFieldsLeavesCart(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	sessionID := carts.CreateSession()

	_, err := carts.AddItem(context.Background(), sessionID, "1", "M", nil)
	require.NoError(t, err)

	profile := validProfile()
	profile.Address = "  "

	_, err = orders.Submit(context.Background(), sessionID, profile)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Len(t, carts.Items(sessionID), 1)
}

func TestSubmitSuccess(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	broker := newFakeBroker()
	orders, carts, _ := newTestServices(t, orderRepo, broker)
	sessionID := carts.CreateSession()

	_, err := carts.AddItem(context.Background(), sessionID, "1", "M", []string{"granola", "banana"})
	require.NoError(t, err)

	order, err := orders.Submit(context.Background(), sessionID, validProfile())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.False(t, order.ID.IsZero())
	// 12.00 + granola 2.00 + banana 1.50
	assert.True(t, order.Total.Equal(decimal.RequireFromString("15.50")), order.Total.String())
	assert.Empty(t, carts.Items(sessionID))
	assert.Len(t, broker.published[queue.QueueOrderNotifications], 1)
}

func TestSubmitPersistenceFailureKeepsCart(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.failCreate = true
	orders, carts, _ := newTestServices(t, orderRepo, newFakeBroker())
	sessionID := carts.CreateSession()

	_, err := carts.AddItem(context.Background(), sessionID, "2", "G", nil)
	require.NoError(t, err)

	_, err = orders.Submit(context.Background(), sessionID, validProfile())
	require.Error(t, err)
	assert.Len(t, carts.Items(sessionID), 1)
}

func TestSubmitPublishFailureStillClearsCart(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	broker := newFakeBroker()
	broker.failAll = true
	orders, carts, _ := newTestServices(t, orderRepo, broker)
	sessionID := carts.CreateSession()

	_, err := carts.AddItem(context.Background(), sessionID, "1", "P", nil)
	require.NoError(t, err)

	order, err := orders.Submit(context.Background(), sessionID, validProfile())
	require.NoError(t, err)
	assert.False(t, order.ID.IsZero())
	assert.Empty(t, carts.Items(sessionID))
}

func submitOrder(t *testing.T, orders *OrderService, carts *CartService) *domain.Order {
	t.Helper()

	sessionID := carts.CreateSession()
	_, err := carts.AddItem(context.Background(), sessionID, "1", "M", nil)
	require.NoError(t, err)

	order, err := orders.Submit(context.Background(), sessionID, validProfile())
	require.NoError(t, err)
	return order
}

func TestTransitionIllegalEdge(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	order := submitOrder(t, orders, carts)

	_, err := orders.Transition(context.Background(), order.ID, "delivered")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestTransitionUnknownStatus(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	order := submitOrder(t, orders, carts)

	_, err := orders.Transition(context.Background(), order.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestTransitionFullLifecycle(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	order := submitOrder(t, orders, carts)

	for _, target := range []string{"confirmed", "preparing", "delivering", "delivered"} {
		updated, err := orders.Transition(context.Background(), order.ID, target)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus(target), updated.Status)
	}

	// delivered is terminal
	_, err := orders.Transition(context.Background(), order.ID, "pending")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestTransitionCancelOnlyFromPending(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	order := submitOrder(t, orders, carts)

	_, err := orders.Transition(context.Background(), order.ID, "confirmed")
	require.NoError(t, err)

	_, err = orders.Transition(context.Background(), order.ID, "cancelled")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestListFilterRejectsUnknownStatus(t *testing.T) {
	orders, _, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())

	_, err := orders.List(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestCustomerOrders(t *testing.T) {
	orders, carts, _ := newTestServices(t, newFakeOrderRepo(), newFakeBroker())
	order := submitOrder(t, orders, carts)

	history, err := orders.CustomerOrders(context.Background(), "11987654321")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
	require.NotNil(t, history[0].Customer)
	assert.Equal(t, "Maria Silva", history[0].Customer.Name)

	_, err = orders.CustomerOrders(context.Background(), "11000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessOrderCreatedDispatches(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	broker := newFakeBroker()
	logger := zap.NewNop().Sugar()
	seed := domain.SeedCatalog()
	catalogSvc := NewCatalogService(&fakeCatalogRepo{products: seed.Products, addOns: seed.AddOns}, nil, nil, broker, nil, logger)
	carts := NewCartService(catalogSvc, nil, logger)
	customers := newFakeCustomerRepo()
	dispatcher := &fakeDispatcher{}
	orders := NewOrderService(orderRepo, customers, carts, catalogSvc, broker, dispatcher, "5511999999999", logger)

	order := submitOrder(t, orders, carts)

	require.NoError(t, orders.ProcessOrderCreated(context.Background(), order.ID))
	require.Len(t, dispatcher.links, 1)
	assert.Contains(t, dispatcher.links[0], "https://wa.me/5511999999999?text=")
}

func TestCatalogSeedFallback(t *testing.T) {
	logger := zap.NewNop().Sugar()
	failing := &fakeCatalogRepo{err: errors.New("store unreachable")}
	catalogSvc := NewCatalogService(failing, nil, nil, newFakeBroker(), nil, logger)

	catalog := catalogSvc.Catalog(context.Background())
	assert.Len(t, catalog.Products, 3)
	assert.NotEmpty(t, catalog.AddOns)

	empty := &fakeCatalogRepo{}
	catalogSvc = NewCatalogService(empty, nil, nil, newFakeBroker(), nil, logger)
	catalog = catalogSvc.Catalog(context.Background())
	assert.Len(t, catalog.Products, 3)
}
