// Package quotemodel holds the quote business rules: reference numbers,
// totals, expiry, validation and conversion to the storage entity.
package quotemodel

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"quote_service/internal/domain/entities"
)

// DefaultCurrency applies when a quote request names no currency.
const DefaultCurrency = "ZAR"

// CreateQuoteParams is the caller-supplied part of a new quote.
type CreateQuoteParams struct {
	Items    []entities.QuoteItem
	Customer entities.Customer
	Currency string
	Comments string
}

// Model builds quotes. Its clock and id source are replaceable for tests.
type Model struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Model)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(m *Model) { m.newID = newID }
}

func NewModel(opts ...Option) *Model {
	m := &Model{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Now returns the model clock in UTC truncated to milliseconds, the precision
// of the stored ISO-8601 timestamps.
func (m *Model) Now() time.Time {
	return m.now().UTC().Truncate(time.Millisecond)
}

// CreateQuote validates params and assembles a pending quote.
//
// Items are validated before the customer; the first failure is returned as a
// *ValidationError. The reference is derived from existingReferences, so the
// caller must hold the reference lock for the current year.
func (m *Model) CreateQuote(params CreateQuoteParams, existingReferences []string) (entities.Quote, error) {
	return m.CreateQuoteAt(params, existingReferences, m.Now())
}

// CreateQuoteAt is CreateQuote with an explicit creation instant, for callers
// that already derived the reference lock key from it.
func (m *Model) CreateQuoteAt(params CreateQuoteParams, existingReferences []string, at time.Time) (entities.Quote, error) {
	if err := ValidateQuoteItems(params.Items); err != nil {
		return entities.Quote{}, err
	}
	if err := ValidateCustomer(params.Customer); err != nil {
		return entities.Quote{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(params.Currency))
	if err := ValidateCurrency(currency); err != nil {
		return entities.Quote{}, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	now := at.UTC().Truncate(time.Millisecond)
	items := make([]entities.QuoteItem, len(params.Items))
	for i, it := range params.Items {
		items[i] = entities.QuoteItem{
			ID:       strings.TrimSpace(it.ID),
			Name:     strings.TrimSpace(it.Name),
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	totals := CalculateTotals(items)

	return entities.Quote{
		ID:              m.newID(),
		ReferenceNumber: GenerateReferenceNumber(existingReferences, now),
		Items:           items,
		Customer:        normalizeCustomer(params.Customer),
		Subtotal:        totals.Subtotal,
		Total:           totals.Total,
		Currency:        currency,
		Status:          entities.QuoteStatusPending,
		Comments:        strings.TrimSpace(params.Comments),
		CreatedAt:       now,
		ExpiresAt:       CalculateExpirationDate(now),
		LastModifiedAt:  now,
	}, nil
}

func normalizeCustomer(c entities.Customer) entities.Customer {
	return entities.Customer{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.TrimSpace(c.Email),
		Phone:     strings.TrimSpace(c.Phone),
		Company:   strings.TrimSpace(c.Company),
	}
}
