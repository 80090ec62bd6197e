package notify

import (
	"context"

	"go.uber.org/zap"
)

// Dispatcher hands a finalized order summary to the outbound channel.
// Actual delivery (opening the deep link, pushing to a gateway) is an
// external concern; implementations only need to get the link out.
type Dispatcher interface {
	Dispatch(ctx context.Context, orderID, link string) error
}

// LogDispatcher surfaces the deep link through the service logs, where the
// storefront process picks it up.
type LogDispatcher struct {
	logger *zap.SugaredLogger
}

func NewLogDispatcher(logger *zap.SugaredLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, orderID, link string) error {
	d.logger.Infow("whatsapp notification ready", "order_id", orderID, "link", link)
	return nil
}
