package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOrderNotifications    = "order-notifications"
	QueueCatalogImport         = "catalog-import"
	QueueOrderNotificationsDLQ = "order-notifications-dlq"
	QueueCatalogImportDLQ      = "catalog-import-dlq"
)
