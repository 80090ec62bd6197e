package repo

import (
	"context"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	// List returns orders newest first, optionally filtered by status.
	List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
}
