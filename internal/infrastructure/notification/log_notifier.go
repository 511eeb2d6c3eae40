package notification

import (
	"context"
	"log/slog"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"
)

// LogNotifier writes the notification to the log instead of sending it.
// Used in local development and wherever no mail relay is configured.
type LogNotifier struct {
	logger *slog.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyQuoteCreated(ctx context.Context, q entities.Quote) error {
	msg := QuoteCreatedMessage(q)
	n.logger.InfoContext(ctx, "quote notification",
		slog.String("reference", q.ReferenceNumber),
		slog.String("subject", msg.Subject),
		slog.Int("items", len(q.Items)),
		slog.Float64("total", q.Total),
		slog.String("currency", q.Currency),
	)
	return nil
}
