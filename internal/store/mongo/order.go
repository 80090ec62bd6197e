package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

type orderLineDoc struct {
	ProductName string               `bson:"product_name"`
	Size        string               `bson:"size"`
	Price       primitive.Decimal128 `bson:"price"`
	Quantity    int                  `bson:"quantity"`
	AddOnIDs    []string             `bson:"complements"`
	AddOnsPrice primitive.Decimal128 `bson:"complements_price"`
}

type orderDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID   `bson:"customer_id"`
	Lines         []orderLineDoc       `bson:"items"`
	Total         primitive.Decimal128 `bson:"total"`
	PaymentMethod string               `bson:"payment_method"`
	Notes         string               `bson:"notes,omitempty"`
	Status        string               `bson:"status"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	doc, err := orderDocFromDomain(order)
	if err != nil {
		return err
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc orderDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return doc.toDomain()
}

func (r *OrderRepository) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != nil {
		filter["status"] = string(*status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeOrders(ctx, cursor)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeOrders(ctx, cursor)
}

// UpdateStatus writes the status and last-update timestamp only; total and
// items stay frozen at creation.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDoc
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return doc.toDomain()
}

func decodeOrders(ctx context.Context, cursor *mongo.Cursor) ([]domain.Order, error) {
	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

func orderDocFromDomain(order *domain.Order) (orderDoc, error) {
	total, err := toDecimal128(order.Total)
	if err != nil {
		return orderDoc{}, err
	}

	lines := make([]orderLineDoc, 0, len(order.Lines))
	for _, line := range order.Lines {
		price, err := toDecimal128(line.UnitPrice)
		if err != nil {
			return orderDoc{}, err
		}
		addOnsPrice, err := toDecimal128(line.AddOnsPrice)
		if err != nil {
			return orderDoc{}, err
		}
		lines = append(lines, orderLineDoc{
			ProductName: line.ProductName,
			Size:        line.Size,
			Price:       price,
			Quantity:    line.Quantity,
			AddOnIDs:    line.AddOnIDs,
			AddOnsPrice: addOnsPrice,
		})
	}

	return orderDoc{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		Lines:         lines,
		Total:         total,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}, nil
}

func (doc orderDoc) toDomain() (*domain.Order, error) {
	// a stored status outside the known set is corrupt data, not a default
	status, err := domain.ParseOrderStatus(doc.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", doc.ID.Hex(), err)
	}

	total, err := fromDecimal128(doc.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		price, err := fromDecimal128(line.Price)
		if err != nil {
			return nil, err
		}
		addOnsPrice, err := fromDecimal128(line.AddOnsPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.OrderLine{
			ProductName: line.ProductName,
			Size:        line.Size,
			UnitPrice:   price,
			Quantity:    line.Quantity,
			AddOnIDs:    line.AddOnIDs,
			AddOnsPrice: addOnsPrice,
		})
	}

	return &domain.Order{
		ID:            doc.ID,
		CustomerID:    doc.CustomerID,
		Lines:         lines,
		Total:         total,
		PaymentMethod: doc.PaymentMethod,
		Notes:         doc.Notes,
		Status:        status,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}
