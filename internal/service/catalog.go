package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/parser"
	"github.com/AndersonViniciusReis/acai-app/internal/queue"
	"github.com/AndersonViniciusReis/acai-app/internal/repo"
	"github.com/AndersonViniciusReis/acai-app/internal/store/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CatalogService struct {
	catalogRepo repo.CatalogRepository
	taskRepo    repo.CatalogImportTaskRepository
	parser      *parser.GoogleSheetsParser
	broker      queue.Broker
	storage     *mongo.Storage
	logger      *zap.SugaredLogger
}

func NewCatalogService(
	catalogRepo repo.CatalogRepository,
	taskRepo repo.CatalogImportTaskRepository,
	parser *parser.GoogleSheetsParser,
	broker queue.Broker,
	storage *mongo.Storage,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		taskRepo:    taskRepo,
		parser:      parser,
		broker:      broker,
		storage:     storage,
		logger:      logger,
	}
}

// Catalog loads the storefront catalog. A failing or empty store degrades
// to the built-in seed catalog instead of an empty shop; this is the one
// collaborator allowed a silent fallback.
func (s *CatalogService) Catalog(ctx context.Context) domain.Catalog {
	seed := domain.SeedCatalog()

	products, err := s.catalogRepo.GetProducts(ctx)
	if err != nil {
		s.logger.Warnw("failed to load products, serving seed catalog", "error", err)
		products = seed.Products
	} else if len(products) == 0 {
		products = seed.Products
	}

	addOns, err := s.catalogRepo.GetAddOns(ctx)
	if err != nil {
		s.logger.Warnw("failed to load complements, serving seed catalog", "error", err)
		addOns = seed.AddOns
	} else if len(addOns) == 0 {
		addOns = seed.AddOns
	}

	return domain.Catalog{
		Products: products,
		AddOns:   addOns,
	}
}

func (s *CatalogService) Products(ctx context.Context) []domain.Product {
	return s.Catalog(ctx).Products
}

func (s *CatalogService) AddOns(ctx context.Context) []domain.AddOn {
	return s.Catalog(ctx).AddOns
}

func (s *CatalogService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	task := &domain.CatalogImportTask{
		Status:        domain.ImportStatusQueued,
		SpreadsheetID: spreadsheetID,
		RetryCount:    0,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.CatalogImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueCatalogImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportStatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("catalog import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *CatalogService) GetImportTask(ctx context.Context, taskID primitive.ObjectID) (*domain.CatalogImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

func (s *CatalogService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "sheets parser not configured")
		return fmt.Errorf("sheets parser not configured")
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing catalog import", "task_id", taskID.Hex())

	products, addOns, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.IncrementRetryCount(ctx, taskID)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	// replace the catalog and finish the task atomically
	session, err := s.storage.StartSession()
	if err != nil {
		s.logger.Errorw("failed to start session", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	if err := session.StartTransaction(); err != nil {
		s.logger.Errorw("failed to start transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := s.catalogRepo.ReplaceCatalog(ctx, products, addOns); err != nil {
		s.logger.Errorw("failed to replace catalog", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	if err := s.taskRepo.Complete(ctx, taskID, len(products), len(addOns)); err != nil {
		s.logger.Errorw("failed to complete task", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to complete task: %w", err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		s.logger.Errorw("failed to commit transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Infow("catalog import completed", "task_id", taskID.Hex(), "products", len(products), "complements", len(addOns))

	return nil
}
