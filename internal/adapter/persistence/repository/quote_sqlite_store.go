package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase/interfaces"
)

const quoteColumns = `id, reference_number, items, customer, subtotal, total, currency, status, comments, created_at, expires_at, last_modified_at`

// QuoteSQLiteStore persists quote entities in a SQLite table.
//
// Table requirements (see database.EnsureSchema):
//   - seq autoincrement keeps insertion order for listing
//   - id is unique, reference_number is indexed but not unique
type QuoteSQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IQuoteStore = (*QuoteSQLiteStore)(nil)

func NewQuoteSQLiteStore(db *sql.DB) *QuoteSQLiteStore {
	return &QuoteSQLiteStore{db: db, now: time.Now}
}

func (s *QuoteSQLiteStore) CreateQuote(ctx context.Context, e entities.QuoteEntity) (entities.QuoteEntity, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (`+quoteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ReferenceNumber, e.Items, e.Customer, e.Subtotal, e.Total,
		e.Currency, e.Status, e.Comments, e.CreatedAt, e.ExpiresAt, e.LastModifiedAt,
	)
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("inserting quote: %w", err)
	}
	return e, nil
}

func (s *QuoteSQLiteStore) FindQuoteByReference(ctx context.Context, ref string) (entities.QuoteEntity, error) {
	return s.findOne(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE reference_number = ? ORDER BY seq LIMIT 1`, ref)
}

func (s *QuoteSQLiteStore) FindQuoteByID(ctx context.Context, id string) (entities.QuoteEntity, error) {
	return s.findOne(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
}

func (s *QuoteSQLiteStore) UpdateQuoteStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteEntity, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE quotes SET status = ?, last_modified_at = ? WHERE id = ?`,
		string(status), quotemodel.FormatTime(s.now()), id,
	)
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("updating quote status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return entities.QuoteEntity{}, nil
	}
	return s.FindQuoteByID(ctx, id)
}

func (s *QuoteSQLiteStore) GetAllReferences(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT reference_number FROM quotes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	defer rows.Close()

	refs := make([]string, 0)
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scanning reference: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *QuoteSQLiteStore) GetAllQuotes(ctx context.Context, limit, offset int) ([]entities.QuoteEntity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY seq LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	out := make([]entities.QuoteEntity, 0)
	for rows.Next() {
		e, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *QuoteSQLiteStore) DeleteQuote(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}

func (s *QuoteSQLiteStore) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *QuoteSQLiteStore) findOne(ctx context.Context, query string, arg any) (entities.QuoteEntity, error) {
	e, err := scanQuote(s.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteEntity{}, nil
	}
	return e, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (entities.QuoteEntity, error) {
	var e entities.QuoteEntity
	err := row.Scan(
		&e.ID, &e.ReferenceNumber, &e.Items, &e.Customer, &e.Subtotal, &e.Total,
		&e.Currency, &e.Status, &e.Comments, &e.CreatedAt, &e.ExpiresAt, &e.LastModifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteEntity{}, err
	}
	if err != nil {
		return entities.QuoteEntity{}, fmt.Errorf("scanning quote: %w", err)
	}
	return e, nil
}
