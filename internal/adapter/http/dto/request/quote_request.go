package request

import (
	"errors"
	"strconv"
	"strings"

	"quote_service/internal/domain/entities"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var (
	ErrInvalidLimit  = errors.New("limit must be an integer between 1 and 100")
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)

type QuoteItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
}

// CreateQuoteRequest is the POST /api/quotes body. Client-supplied totals,
// status or reference are not part of it and are ignored if sent.
type CreateQuoteRequest struct {
	Items    []QuoteItemRequest `json:"items"`
	Customer *CustomerRequest   `json:"customer"`
	Comments string             `json:"comments,omitempty"`
	Currency string             `json:"currency,omitempty" example:"ZAR"`
}

func (r CreateQuoteRequest) QuoteItems() []entities.QuoteItem {
	if len(r.Items) == 0 {
		return nil
	}
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items
}

// QuoteCustomer returns nil when the body carried no customer object.
func (r CreateQuoteRequest) QuoteCustomer() *entities.Customer {
	if r.Customer == nil {
		return nil
	}
	return &entities.Customer{
		FirstName: r.Customer.FirstName,
		LastName:  r.Customer.LastName,
		Email:     r.Customer.Email,
		Phone:     r.Customer.Phone,
		Company:   r.Customer.Company,
	}
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" example:"approved"`
}

// ParsePagination reads the limit and offset query values, applying defaults
// for absent ones. Non-integers and out-of-range values are rejected.
func ParsePagination(limitRaw, offsetRaw string) (limit, offset int, err error) {
	limit, offset = DefaultLimit, 0

	if s := strings.TrimSpace(limitRaw); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, ErrInvalidLimit
		}
	}
	if s := strings.TrimSpace(offsetRaw); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			return 0, 0, ErrInvalidOffset
		}
	}
	return limit, offset, nil
}
