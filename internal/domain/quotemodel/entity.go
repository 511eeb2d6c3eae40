package quotemodel

import (
	"encoding/json"
	"fmt"
	"time"

	"quote_service/internal/domain/entities"
)

// ISOLayout renders timestamps the way the storage entity keeps them.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in UTC using ISOLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseTime parses an ISO-8601 timestamp and returns it in UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ToEntity flattens q for storage.
func ToEntity(q entities.Quote) (entities.QuoteEntity, error) {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("failed to serialize quote items: %w", err)
	}
	customer, err := json.Marshal(q.Customer)
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("failed to serialize quote customer: %w", err)
	}

	return entities.QuoteEntity{
		ID:              q.ID,
		ReferenceNumber: q.ReferenceNumber,
		Items:           string(items),
		Customer:        string(customer),
		Subtotal:        q.Subtotal,
		Total:           q.Total,
		Currency:        q.Currency,
		Status:          string(q.Status),
		Comments:        q.Comments,
		CreatedAt:       FormatTime(q.CreatedAt),
		ExpiresAt:       FormatTime(q.ExpiresAt),
		LastModifiedAt:  FormatTime(q.LastModifiedAt),
	}, nil
}

// FromEntity restores a quote from its storage form.
func FromEntity(e entities.QuoteEntity) (entities.Quote, error) {
	var items []entities.QuoteItem
	if err := json.Unmarshal([]byte(e.Items), &items); err != nil {
		return entities.Quote{}, fmt.Errorf("failed to parse items of quote %s: %w", e.ID, err)
	}
	var customer entities.Customer
	if err := json.Unmarshal([]byte(e.Customer), &customer); err != nil {
		return entities.Quote{}, fmt.Errorf("failed to parse customer of quote %s: %w", e.ID, err)
	}

	createdAt, err := ParseTime(e.CreatedAt)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to parse createdAt of quote %s: %w", e.ID, err)
	}
	expiresAt, err := ParseTime(e.ExpiresAt)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to parse expiresAt of quote %s: %w", e.ID, err)
	}
	lastModifiedAt, err := ParseTime(e.LastModifiedAt)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to parse lastModifiedAt of quote %s: %w", e.ID, err)
	}

	return entities.Quote{
		ID:              e.ID,
		ReferenceNumber: e.ReferenceNumber,
		Items:           items,
		Customer:        customer,
		Subtotal:        e.Subtotal,
		Total:           e.Total,
		Currency:        e.Currency,
		Status:          entities.QuoteStatus(e.Status),
		Comments:        e.Comments,
		CreatedAt:       createdAt,
		ExpiresAt:       expiresAt,
		LastModifiedAt:  lastModifiedAt,
	}, nil
}
