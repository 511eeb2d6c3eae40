package repository

import (
	"context"
	"fmt"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase/interfaces"
)

// QuoteRepository converts between domain quotes and storage entities.
// Every failure is wrapped with the name of the operation that hit it.
type QuoteRepository struct {
	store interfaces.IQuoteStore
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store interfaces.IQuoteStore) *QuoteRepository {
	return &QuoteRepository{store: store}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	e, err := quotemodel.ToEntity(q)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}
	saved, err := r.store.CreateQuote(ctx, e)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}
	out, err := quotemodel.FromEntity(saved)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}
	return out, nil
}

func (r *QuoteRepository) FindByReference(ctx context.Context, ref string) (entities.Quote, error) {
	e, err := r.store.FindQuoteByReference(ctx, ref)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to find quote by reference: %w", err)
	}
	q, err := fromEntityOrZero(e)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to find quote by reference: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (entities.Quote, error) {
	e, err := r.store.FindQuoteByID(ctx, id)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to find quote by id: %w", err)
	}
	q, err := fromEntityOrZero(e)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to find quote by id: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	e, err := r.store.UpdateQuoteStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to update quote status: %w", err)
	}
	q, err := fromEntityOrZero(e)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to update quote status: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) GetExistingReferences(ctx context.Context) ([]string, error) {
	refs, err := r.store.GetAllReferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing references: %w", err)
	}
	return refs, nil
}

func (r *QuoteRepository) List(ctx context.Context, limit, offset int) ([]entities.Quote, error) {
	es, err := r.store.GetAllQuotes(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	out := make([]entities.Quote, 0, len(es))
	for _, e := range es {
		q, err := quotemodel.FromEntity(e)
		if err != nil {
			return nil, fmt.Errorf("failed to list quotes: %w", err)
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.store.DeleteQuote(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quote: %w", err)
	}
	return deleted, nil
}

func (r *QuoteRepository) HealthCheck(ctx context.Context) error {
	if err := r.store.HealthCheck(ctx); err != nil {
		return fmt.Errorf("failed to check quote store health: %w", err)
	}
	return nil
}

func fromEntityOrZero(e entities.QuoteEntity) (entities.Quote, error) {
	if e.ID == "" {
		return entities.Quote{}, nil
	}
	return quotemodel.FromEntity(e)
}
