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

type CustomerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

type customerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	Address      string             `bson:"address"`
	Neighborhood string             `bson:"neighborhood"`
	Reference    string             `bson:"reference,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (doc customerDoc) toDomain() *domain.CustomerProfile {
	return &domain.CustomerProfile{
		ID:           doc.ID,
		Name:         doc.Name,
		Phone:        doc.Phone,
		Address:      doc.Address,
		Neighborhood: doc.Neighborhood,
		Reference:    doc.Reference,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// UpsertByPhone keeps the phone as the natural key: repeat orders overwrite
// name, address, neighborhood and reference, never the phone itself.
// Session-only fields (payment method, notes) are not persisted here.
func (r *CustomerRepository) UpsertByPhone(ctx context.Context, profile *domain.CustomerProfile) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()

	filter := bson.M{"phone": profile.Phone}
	update := bson.M{
		"$set": bson.M{
			"name":         profile.Name,
			"address":      profile.Address,
			"neighborhood": profile.Neighborhood,
			"reference":    profile.Reference,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"phone":      profile.Phone,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc customerDoc
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to upsert customer: %w", err)
	}

	profile.ID = doc.ID

	return doc.ID, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CustomerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc customerDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("customer: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.CustomerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc customerDoc
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("customer: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return doc.toDomain(), nil
}
