package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/queue"
	"github.com/AndersonViniciusReis/acai-app/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// NotificationWorker consumes order-created events and turns each one
// into an outbound WhatsApp notification.
type NotificationWorker struct {
	orderService *service.OrderService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewNotificationWorker(
	orderService *service.OrderService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *NotificationWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &NotificationWorker{
		orderService: orderService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *NotificationWorker) Start() error {
	w.logger.Info("starting notification worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderNotifications, w.handleMessage)
}

func (w *NotificationWorker) Stop() {
	w.logger.Info("stopping notification worker")
	w.cancel()
}

func (w *NotificationWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.OrderCreatedMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing order notification", "order_id", msg.OrderID)

	orderID, err := primitive.ObjectIDFromHex(msg.OrderID)
	if err != nil {
		w.logger.Errorw("invalid order ID", "order_id", msg.OrderID, "error", err)
		return fmt.Errorf("invalid order ID: %w", err)
	}

	if err := w.orderService.ProcessOrderCreated(ctx, orderID); err != nil {
		w.logger.Errorw("failed to process order notification", "order_id", msg.OrderID, "error", err)
		return err
	}

	return nil
}
