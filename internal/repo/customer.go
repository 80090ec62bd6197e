package repo

import (
	"context"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerRepository interface {
	// UpsertByPhone creates the profile or overwrites its mutable fields
	// (name, address, neighborhood, reference) when the phone already exists.
	UpsertByPhone(ctx context.Context, profile *domain.CustomerProfile) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CustomerProfile, error)
	GetByPhone(ctx context.Context, phone string) (*domain.CustomerProfile, error)
}
