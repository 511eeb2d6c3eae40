package interfaces

import (
	"context"

	"quote_service/internal/domain/entities"
)

// IQuoteStore is the storage collaborator behind the quote repository.
//
// Backends (memory, SQLite, DynamoDB) must:
//   - append on CreateQuote without enforcing reference uniqueness
//   - return a zero-value entity (empty ID) when a lookup misses
//   - stamp LastModifiedAt in UpdateQuoteStatus
//   - report reachability through HealthCheck

//go:generate mockgen -source=quote_store_interface.go -destination=mocks/mock_quote_store_interface.go -package=mock_interfaces

type IQuoteStore interface {
	CreateQuote(ctx context.Context, e entities.QuoteEntity) (entities.QuoteEntity, error)
	FindQuoteByReference(ctx context.Context, ref string) (entities.QuoteEntity, error)
	FindQuoteByID(ctx context.Context, id string) (entities.QuoteEntity, error)
	UpdateQuoteStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteEntity, error)
	GetAllReferences(ctx context.Context) ([]string, error)
	GetAllQuotes(ctx context.Context, limit, offset int) ([]entities.QuoteEntity, error)
	DeleteQuote(ctx context.Context, id string) (bool, error)
	HealthCheck(ctx context.Context) error
}
