package repo

import (
	"context"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
)

type CatalogRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetAddOns(ctx context.Context) ([]domain.AddOn, error)
	ReplaceCatalog(ctx context.Context, products []domain.Product, addOns []domain.AddOn) error
}
