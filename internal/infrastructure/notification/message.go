// Package notification delivers the new-quote notification to the sales inbox.
package notification

import (
	"fmt"
	"strings"

	"quote_service/internal/domain/entities"
)

const dateLayout = "2 January 2006"

// Message is a rendered plain-text notification.
type Message struct {
	Subject string
	Body    string
}

// QuoteCreatedMessage renders the notification sent when a quote is created.
func QuoteCreatedMessage(q entities.Quote) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "A new quote request has been received.\n\n")
	fmt.Fprintf(&b, "Reference: %s\n", q.ReferenceNumber)
	fmt.Fprintf(&b, "Status:    %s\n", q.Status)
	fmt.Fprintf(&b, "Created:   %s\n", q.CreatedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Expires:   %s\n\n", q.ExpiresAt.Format(dateLayout))

	c := q.Customer
	fmt.Fprintf(&b, "Customer\n")
	fmt.Fprintf(&b, "  Name:    %s %s\n", c.FirstName, c.LastName)
	fmt.Fprintf(&b, "  Email:   %s\n", c.Email)
	fmt.Fprintf(&b, "  Phone:   %s\n", c.Phone)
	if c.Company != "" {
		fmt.Fprintf(&b, "  Company: %s\n", c.Company)
	}

	fmt.Fprintf(&b, "\nItems\n")
	for _, it := range q.Items {
		fmt.Fprintf(&b, "  - %s x%d @ %s = %s\n",
			it.Name, it.Quantity,
			formatAmount(q.Currency, it.Price),
			formatAmount(q.Currency, it.Price*float64(it.Quantity)),
		)
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", formatAmount(q.Currency, q.Subtotal))
	fmt.Fprintf(&b, "Total:    %s\n", formatAmount(q.Currency, q.Total))

	if q.Comments != "" {
		fmt.Fprintf(&b, "\nComments\n  %s\n", q.Comments)
	}

	return Message{
		Subject: fmt.Sprintf("New quote %s from %s %s", q.ReferenceNumber, c.FirstName, c.LastName),
		Body:    b.String(),
	}
}

func formatAmount(currency string, v float64) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}
