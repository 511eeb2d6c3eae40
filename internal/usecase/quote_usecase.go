package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/infrastructure/logging"
	"quote_service/internal/infrastructure/metrics"
	"quote_service/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidReference  = errors.New("invalid reference number format")
	ErrInvalidQuoteID    = errors.New("quote id is required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrMissingItems      = errors.New("quote must contain at least one item")
	ErrMissingCustomer   = errors.New("customer information is required")
)

const (
	DefaultListLimit   = 50
	MaxListLimit       = 100
	DefaultLockTimeout = 5 * time.Second
)

// CreateQuoteInput is the unvalidated request to create a quote.
// A nil Customer means the request carried none.
type CreateQuoteInput struct {
	Items    []entities.QuoteItem
	Customer *entities.Customer
	Currency string
	Comments string
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

// IQuoteUseCase exposes the quote lifecycle:
//   - POST /api/quotes => CreateQuote()
//   - GET /api/quotes/{reference} => GetByReference()
//   - GET /api/quotes => List()
//   - PATCH /api/quotes/{id}/status => UpdateStatus()
//   - DELETE /api/quotes/{id} => Delete()
//   - GET /api/quotes/health => Health()

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByReference(ctx context.Context, ref string) (entities.Quote, error)
	List(ctx context.Context, limit, offset int) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	Health(ctx context.Context) (int, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	notifier    interfaces.INotifier
	locker      interfaces.ILocker
	model       *quotemodel.Model
	metrics     *metrics.Metrics
	lockTimeout time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

type Option func(*QuoteUseCase)

func WithModel(m *quotemodel.Model) Option {
	return func(u *QuoteUseCase) { u.model = m }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *QuoteUseCase) { u.metrics = m }
}

func WithLockTimeout(d time.Duration) Option {
	return func(u *QuoteUseCase) {
		if d > 0 {
			u.lockTimeout = d
		}
	}
}

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, locker interfaces.ILocker, opts ...Option) *QuoteUseCase {
	u := &QuoteUseCase{
		repo:        repo,
		notifier:    notifier,
		locker:      locker,
		model:       quotemodel.NewModel(),
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateQuote validates, numbers and persists a quote, then attempts the
// notification. A failed notification is logged and does not fail the call.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	if len(in.Items) == 0 {
		return entities.Quote{}, ErrMissingItems
	}
	if in.Customer == nil {
		return entities.Quote{}, ErrMissingCustomer
	}

	created, err := u.createNumbered(ctx, in)
	if err != nil {
		return entities.Quote{}, err
	}
	u.metrics.QuoteCreated()

	logger := logging.FromContext(ctx)
	logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", created.ID),
		slog.String("reference", created.ReferenceNumber),
		slog.Float64("total", created.Total),
	)

	if u.notifier != nil {
		if err := u.notifier.NotifyQuoteCreated(ctx, created); err != nil {
			u.metrics.NotificationFailed()
			logger.WarnContext(ctx, "failed to send quote notification",
				slog.String("reference", created.ReferenceNumber),
				slog.String("error", err.Error()),
			)
		}
	}

	return created, nil
}

// createNumbered holds the per-year reference lock from reading the existing
// references until the new quote is stored.
func (u *QuoteUseCase) createNumbered(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	now := u.model.Now()

	lockCtx, cancel := context.WithTimeout(ctx, u.lockTimeout)
	defer cancel()
	unlock, err := u.locker.Lock(lockCtx, referenceLockKey(now))
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to reserve reference number: %w", err)
	}
	defer unlock()

	refs, err := u.repo.GetExistingReferences(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := u.model.CreateQuoteAt(quotemodel.CreateQuoteParams{
		Items:    in.Items,
		Customer: *in.Customer,
		Currency: in.Currency,
		Comments: in.Comments,
	}, refs, now)
	if err != nil {
		return entities.Quote{}, err
	}

	return u.repo.Create(ctx, q)
}

func referenceLockKey(now time.Time) string {
	return fmt.Sprintf("quote-reference:%d", now.Year())
}

func (u *QuoteUseCase) GetByReference(ctx context.Context, ref string) (entities.Quote, error) {
	ref = strings.TrimSpace(ref)
	if !quotemodel.IsValidReference(ref) {
		return entities.Quote{}, ErrInvalidReference
	}

	q, err := u.repo.FindByReference(ctx, ref)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, limit, offset int) ([]entities.Quote, error) {
	if limit < 1 || limit > MaxListLimit || offset < 0 {
		return nil, ErrInvalidPagination
	}
	return u.repo.List(ctx, limit, offset)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	s := entities.QuoteStatus(status)
	if !s.IsValid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, s)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.metrics.StatusUpdated(status)

	logging.FromContext(ctx).InfoContext(ctx, "quote status updated",
		slog.String("quote_id", updated.ID),
		slog.String("reference", updated.ReferenceNumber),
		slog.String("status", status),
	)
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	u.metrics.QuoteDeleted()

	logging.FromContext(ctx).InfoContext(ctx, "quote deleted", slog.String("quote_id", id))
	return nil
}

// Health pings the store and returns how many quotes it holds.
func (u *QuoteUseCase) Health(ctx context.Context) (int, error) {
	if err := u.repo.HealthCheck(ctx); err != nil {
		return 0, err
	}
	refs, err := u.repo.GetExistingReferences(ctx)
	if err != nil {
		return 0, err
	}
	return len(refs), nil
}
