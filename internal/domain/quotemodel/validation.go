package quotemodel

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"quote_service/internal/domain/entities"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidationError reports invalid quote input. Field names the offending
// attribute using its wire name (e.g. "items[0].price", "customer.email").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateQuoteItems checks the item list is non-empty and that every item has
// an id, a name, a positive price and a positive quantity.
func ValidateQuoteItems(items []entities.QuoteItem) error {
	if len(items) == 0 {
		return invalid("items", "Quote must contain at least one item")
	}

	for i, it := range items {
		label := itemLabel(i, it)
		if strings.TrimSpace(it.ID) == "" {
			return invalid(fmt.Sprintf("items[%d].id", i), "Item %s is missing an id", label)
		}
		if strings.TrimSpace(it.Name) == "" {
			return invalid(fmt.Sprintf("items[%d].name", i), "Item %s is missing a name", label)
		}
		if it.Price <= 0 {
			return invalid(fmt.Sprintf("items[%d].price", i), "Invalid price for item %s: price must be greater than 0", label)
		}
		if it.Quantity <= 0 {
			return invalid(fmt.Sprintf("items[%d].quantity", i), "Invalid quantity for item %s: quantity must be greater than 0", label)
		}
	}
	return nil
}

func itemLabel(i int, it entities.QuoteItem) string {
	if name := strings.TrimSpace(it.Name); name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("at position %d", i+1)
}

// ValidateCustomer checks the required contact fields and the email shape.
// Control characters are refused in every field; the names end up in mail headers.
func ValidateCustomer(c entities.Customer) error {
	for _, f := range []struct{ field, value string }{
		{"customer.firstName", c.FirstName},
		{"customer.lastName", c.LastName},
		{"customer.email", c.Email},
		{"customer.phone", c.Phone},
		{"customer.company", c.Company},
	} {
		if strings.IndexFunc(f.value, unicode.IsControl) >= 0 {
			return invalid(f.field, "Customer %s must not contain control characters", strings.TrimPrefix(f.field, "customer."))
		}
	}

	switch {
	case strings.TrimSpace(c.FirstName) == "":
		return invalid("customer.firstName", "Customer first name is required")
	case strings.TrimSpace(c.LastName) == "":
		return invalid("customer.lastName", "Customer last name is required")
	case strings.TrimSpace(c.Email) == "":
		return invalid("customer.email", "Customer email is required")
	case !emailPattern.MatchString(strings.TrimSpace(c.Email)):
		return invalid("customer.email", "Customer email %q is not a valid email address", c.Email)
	case strings.TrimSpace(c.Phone) == "":
		return invalid("customer.phone", "Customer phone is required")
	}
	return nil
}

// ValidateCurrency accepts an empty code (the default applies) or three
// uppercase letters.
func ValidateCurrency(code string) error {
	if code == "" || currencyPattern.MatchString(code) {
		return nil
	}
	return invalid("currency", "Currency %q must be a three-letter code", code)
}
