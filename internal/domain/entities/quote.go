package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - pending is the only creation state.
//   - Transitions are unconstrained: any status may follow any other.
//   - expired is set by staff; nothing moves a quote there automatically.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteStatuses lists every accepted status in wire order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusApproved,
	QuoteStatusRejected,
	QuoteStatusExpired,
}

func (s QuoteStatus) IsValid() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// QuoteItem is a single priced line of a quote (a course or service tier).
type QuoteItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Customer is the embedded contact of whoever requested the quote.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
}

// Quote is a non-binding pricing request.
//
// Monetary representation:
//   - Subtotal and Total are float64 sums of price x quantity.
//   - Total equals Subtotal; taxes and fees are not modelled.
type Quote struct {
	ID              string      `json:"id"`
	ReferenceNumber string      `json:"referenceNumber"`
	Items           []QuoteItem `json:"items"`
	Customer        Customer    `json:"customer"`
	Subtotal        float64     `json:"subtotal"`
	Total           float64     `json:"total"`
	Currency        string      `json:"currency"`
	Status          QuoteStatus `json:"status"`
	Comments        string      `json:"comments,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	ExpiresAt       time.Time   `json:"expiresAt"`
	LastModifiedAt  time.Time   `json:"lastModifiedAt"`
}

// QuoteEntity is the flattened form handed to storage backends.
//
// Storage model:
//   - Items and Customer are JSON text.
//   - Dates are ISO-8601 strings in UTC with millisecond precision.
type QuoteEntity struct {
	ID              string
	ReferenceNumber string
	Items           string
	Customer        string
	Subtotal        float64
	Total           float64
	Currency        string
	Status          string
	Comments        string
	CreatedAt       string
	ExpiresAt       string
	LastModifiedAt  string
}
