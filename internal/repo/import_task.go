package repo

import (
	"context"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogImportTaskRepository interface {
	Create(ctx context.Context, task *domain.CatalogImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.CatalogImportStatus, errorMsg string) error
	Complete(ctx context.Context, id primitive.ObjectID, productCount, addOnCount int) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
