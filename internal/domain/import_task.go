package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogImportStatus string

const (
	ImportStatusQueued     CatalogImportStatus = "queued"
	ImportStatusProcessing CatalogImportStatus = "processing"
	ImportStatusCompleted  CatalogImportStatus = "completed"
	ImportStatusFailed     CatalogImportStatus = "failed"
)

// CatalogImportTask tracks an async catalog refresh from a spreadsheet.
type CatalogImportTask struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Status        CatalogImportStatus `bson:"status" json:"status"`
	SpreadsheetID string              `bson:"spreadsheet_id" json:"spreadsheet_id"`
	ProductCount  int                 `bson:"product_count" json:"product_count"`
	AddOnCount    int                 `bson:"addon_count" json:"addon_count"`
	ErrorMessage  string              `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                 `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
