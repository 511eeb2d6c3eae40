package interfaces

import (
	"context"

	"quote_service/internal/domain/entities"
)

// INotifier delivers the "new quote" notification (email in production).
// Callers treat failures as non-fatal.

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier_interface.go -package=mock_interfaces

type INotifier interface {
	NotifyQuoteCreated(ctx context.Context, q entities.Quote) error
}
