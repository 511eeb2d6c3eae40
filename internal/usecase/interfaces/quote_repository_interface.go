package interfaces

import (
	"context"

	"quote_service/internal/domain/entities"
)

// IQuoteRepository exposes quotes as domain values.
//
// Lookups that miss return a zero-value quote (empty ID) and a nil error.

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	FindByReference(ctx context.Context, ref string) (entities.Quote, error)
	FindByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	GetExistingReferences(ctx context.Context) ([]string, error)
	List(ctx context.Context, limit, offset int) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
	HealthCheck(ctx context.Context) error
}
