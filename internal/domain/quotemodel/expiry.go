package quotemodel

import (
	"time"

	"quote_service/internal/domain/entities"
)

// CalculateExpirationDate moves createdAt forward by one calendar month.
//
// The day of month is kept and overflow rolls into the following month, so
// Jan 31 becomes Mar 3 (Mar 2 in leap years) rather than being clamped to the
// end of February.
func CalculateExpirationDate(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 1, 0)
}

// IsExpired reports whether q's expiry lies before now. It does not change
// the stored status.
func IsExpired(q entities.Quote, now time.Time) bool {
	return now.After(q.ExpiresAt)
}
