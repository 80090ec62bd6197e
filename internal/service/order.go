package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/notify"
	"github.com/AndersonViniciusReis/acai-app/internal/pricing"
	"github.com/AndersonViniciusReis/acai-app/internal/queue"
	"github.com/AndersonViniciusReis/acai-app/internal/repo"
	"github.com/AndersonViniciusReis/acai-app/internal/stats"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo      repo.OrderRepository
	customerRepo   repo.CustomerRepository
	carts          *CartService
	catalog        *CatalogService
	broker         queue.Broker
	dispatcher     notify.Dispatcher
	whatsappNumber string
	logger         *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	customerRepo repo.CustomerRepository,
	carts *CartService,
	catalog *CatalogService,
	broker queue.Broker,
	dispatcher notify.Dispatcher,
	whatsappNumber string,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		customerRepo:   customerRepo,
		carts:          carts,
		catalog:        catalog,
		broker:         broker,
		dispatcher:     dispatcher,
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

// Submit turns the session's cart into a persisted order. The cart is
// cleared only after the order is stored; any failure before that leaves
// the cart untouched so the customer can retry.
func (s *OrderService) Submit(ctx context.Context, sessionID string, profile domain.CustomerProfile) (*domain.Order, error) {
	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	// keep the checkout form around even if the submit below fails
	s.carts.SaveCustomer(sessionID, profile)

	customerID, err := s.customerRepo.UpsertByPhone(ctx, &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	order := &domain.Order{
		CustomerID:    customerID,
		Lines:         domain.NewOrderLines(items),
		Total:         pricing.CartTotal(items),
		PaymentMethod: profile.PaymentMethod,
		Notes:         profile.Notes,
		Status:        domain.StatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// the order exists now; notification delivery is best-effort
	message := domain.OrderCreatedMessage{OrderID: order.ID.Hex()}
	messageBytes, err := json.Marshal(message)
	if err == nil {
		if err := s.broker.Publish(ctx, queue.QueueOrderNotifications, messageBytes); err != nil {
			s.logger.Errorw("failed to publish order notification", "order_id", order.ID.Hex(), "error", err)
		}
	}

	s.carts.Clear(sessionID)

	order.Customer = &profile

	s.logger.Infow("order submitted",
		"order_id", order.ShortID(),
		"customer", profile.Name,
		"total", order.Total.StringFixed(2),
	)

	return order, nil
}

// Transition moves an order along the fulfillment lifecycle, rejecting
// any edge the status machine does not allow.
func (s *OrderService) Transition(ctx context.Context, orderID primitive.ObjectID, target string) (*domain.Order, error) {
	targetStatus, err := domain.ParseOrderStatus(target)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.Status.CanTransitionTo(targetStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, order.Status, targetStatus)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, targetStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Infow("order status updated",
		"order_id", updated.ShortID(),
		"from", order.Status,
		"to", updated.Status,
	)

	return updated, nil
}

// List returns orders newest first, optionally narrowed to one status.
func (s *OrderService) List(ctx context.Context, statusFilter string) ([]domain.Order, error) {
	var status *domain.OrderStatus
	if statusFilter != "" {
		parsed, err := domain.ParseOrderStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	orders, err := s.orderRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.attachCustomers(ctx, orders)

	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, orderID primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warnw("failed to load order customer", "order_id", order.ShortID(), "error", err)
	} else {
		order.Customer = customer
	}

	return order, nil
}

func (s *OrderService) Stats(ctx context.Context) (domain.OrderStats, error) {
	orders, err := s.orderRepo.List(ctx, nil)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("failed to list orders: %w", err)
	}

	return stats.Compute(orders, time.Now()), nil
}

// CustomerOrders returns a customer's order history, looked up by phone.
func (s *OrderService) CustomerOrders(ctx context.Context, phone string) ([]domain.Order, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	orders, err := s.orderRepo.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}

	for i := range orders {
		orders[i].Customer = customer
	}

	return orders, nil
}

// Export writes the full order history as an xlsx workbook.
func (s *OrderService) Export(ctx context.Context, w io.Writer) error {
	orders, err := s.orderRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	s.attachCustomers(ctx, orders)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Pedidos")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range []string{"Pedido", "Data", "Cliente", "Telefone", "Endereço", "Bairro", "Pagamento", "Status", "Itens", "Total"} {
		header.AddCell().SetString(title)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.ShortID())
		row.AddCell().SetString(order.CreatedAt.Format("02/01/2006 15:04"))

		name, phone, address, neighborhood := "", "", "", ""
		if order.Customer != nil {
			name = order.Customer.Name
			phone = domain.FormatPhone(order.Customer.Phone)
			address = order.Customer.Address
			neighborhood = order.Customer.Neighborhood
		}
		row.AddCell().SetString(name)
		row.AddCell().SetString(phone)
		row.AddCell().SetString(address)
		row.AddCell().SetString(neighborhood)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status.Label())

		lines := make([]string, 0, len(order.Lines))
		for _, line := range order.Lines {
			lines = append(lines, fmt.Sprintf("%dx %s", line.Quantity, line.ProductName))
		}
		row.AddCell().SetString(strings.Join(lines, "; "))
		row.AddCell().SetString("R$ " + order.Total.StringFixed(2))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// ProcessOrderCreated builds and dispatches the WhatsApp notification for
// a freshly submitted order. Consumed off the order-notifications queue.
func (s *OrderService) ProcessOrderCreated(ctx context.Context, orderID primitive.ObjectID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}

	catalog := s.catalog.Catalog(ctx)

	message := notify.FormatOrderMessage(*order, *customer, catalog)
	link := notify.DeepLink(s.whatsappNumber, message)

	if err := s.dispatcher.Dispatch(ctx, order.ID.Hex(), link); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}

	return nil
}

// attachCustomers fills in the customer profiles for dashboard views.
// A missing profile leaves the field nil rather than failing the listing.
func (s *OrderService) attachCustomers(ctx context.Context, orders []domain.Order) {
	cache := make(map[primitive.ObjectID]*domain.CustomerProfile)

	for i := range orders {
		id := orders[i].CustomerID
		if profile, ok := cache[id]; ok {
			orders[i].Customer = profile
			continue
		}

		profile, err := s.customerRepo.GetByID(ctx, id)
		if err != nil {
			s.logger.Warnw("failed to load order customer", "order_id", orders[i].ShortID(), "error", err)
			cache[id] = nil
			continue
		}

		cache[id] = profile
		orders[i].Customer = profile
	}
}
