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

type CatalogRepository struct {
	products *mongo.Collection
	addOns   *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		products: db.Collection("products"),
		addOns:   db.Collection("complements"),
	}
}

type sizeDoc struct {
	Label  string               `bson:"label"`
	Price  primitive.Decimal128 `bson:"price"`
	Volume string               `bson:"volume"`
}

type productDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Sizes       []sizeDoc `bson:"sizes"`
	Image       string    `bson:"image,omitempty"`
	Category    string    `bson:"category"`
	CreatedAt   time.Time `bson:"created_at"`
}

type addOnDoc struct {
	ID        string               `bson:"_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	CreatedAt time.Time            `bson:"created_at"`
}

func (r *CatalogRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *CatalogRepository) GetAddOns(ctx context.Context) ([]domain.AddOn, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.addOns.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get complements: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []addOnDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode complements: %w", err)
	}

	addOns := make([]domain.AddOn, 0, len(docs))
	for _, doc := range docs {
		price, err := fromDecimal128(doc.Price)
		if err != nil {
			return nil, err
		}
		addOns = append(addOns, domain.AddOn{
			ID:    doc.ID,
			Name:  doc.Name,
			Price: price,
		})
	}

	return addOns, nil
}

// ReplaceCatalog swaps the whole stored catalog for the given one. Callers
// run it inside a session transaction so a half-imported catalog is never
// visible.
func (r *CatalogRepository) ReplaceCatalog(ctx context.Context, products []domain.Product, addOns []domain.AddOn) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now()

	productDocs := make([]interface{}, 0, len(products))
	for i, product := range products {
		doc, err := productDocFromDomain(product)
		if err != nil {
			return err
		}
		// preserve catalog ordering across the reimport
		doc.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		productDocs = append(productDocs, doc)
	}

	addOnDocs := make([]interface{}, 0, len(addOns))
	for _, addOn := range addOns {
		price, err := toDecimal128(addOn.Price)
		if err != nil {
			return err
		}
		addOnDocs = append(addOnDocs, addOnDoc{
			ID:        addOn.ID,
			Name:      addOn.Name,
			Price:     price,
			CreatedAt: now,
		})
	}

	if _, err := r.products.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	if len(productDocs) > 0 {
		if _, err := r.products.InsertMany(ctx, productDocs); err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
	}

	if _, err := r.addOns.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear complements: %w", err)
	}
	if len(addOnDocs) > 0 {
		if _, err := r.addOns.InsertMany(ctx, addOnDocs); err != nil {
			return fmt.Errorf("failed to insert complements: %w", err)
		}
	}

	return nil
}

func (doc productDoc) toDomain() (domain.Product, error) {
	sizes := make([]domain.SizeVariant, 0, len(doc.Sizes))
	for _, s := range doc.Sizes {
		price, err := fromDecimal128(s.Price)
		if err != nil {
			return domain.Product{}, err
		}
		sizes = append(sizes, domain.SizeVariant{
			Label:  s.Label,
			Price:  price,
			Volume: s.Volume,
		})
	}

	return domain.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Sizes:       sizes,
		Image:       doc.Image,
		Category:    domain.Category(doc.Category),
	}, nil
}

func productDocFromDomain(product domain.Product) (productDoc, error) {
	sizes := make([]sizeDoc, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		price, err := toDecimal128(s.Price)
		if err != nil {
			return productDoc{}, err
		}
		sizes = append(sizes, sizeDoc{
			Label:  s.Label,
			Price:  price,
			Volume: s.Volume,
		})
	}

	return productDoc{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Sizes:       sizes,
		Image:       product.Image,
		Category:    string(product.Category),
	}, nil
}
