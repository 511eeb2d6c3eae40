package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase/interfaces"
)

var ErrStoreNotInitialized = errors.New("quote store not initialized")

// QuoteMemoryStore keeps quote entities in process memory, in insertion order.
// Nothing survives a restart.
type QuoteMemoryStore struct {
	mu     sync.RWMutex
	quotes []entities.QuoteEntity
	now    func() time.Time
}

var _ interfaces.IQuoteStore = (*QuoteMemoryStore)(nil)

type MemoryStoreOption func(*QuoteMemoryStore)

// WithMemoryClock replaces the clock used to stamp status updates.
func WithMemoryClock(now func() time.Time) MemoryStoreOption {
	return func(s *QuoteMemoryStore) { s.now = now }
}

func NewQuoteMemoryStore(opts ...MemoryStoreOption) *QuoteMemoryStore {
	s := &QuoteMemoryStore{quotes: make([]entities.QuoteEntity, 0), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *QuoteMemoryStore) CreateQuote(_ context.Context, e entities.QuoteEntity) (entities.QuoteEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = append(s.quotes, e)
	return e, nil
}

func (s *QuoteMemoryStore) FindQuoteByReference(_ context.Context, ref string) (entities.QuoteEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.quotes {
		if e.ReferenceNumber == ref {
			return e, nil
		}
	}
	return entities.QuoteEntity{}, nil
}

func (s *QuoteMemoryStore) FindQuoteByID(_ context.Context, id string) (entities.QuoteEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.quotes[i], nil
	}
	return entities.QuoteEntity{}, nil
}

func (s *QuoteMemoryStore) UpdateQuoteStatus(_ context.Context, id string, status entities.QuoteStatus) (entities.QuoteEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return entities.QuoteEntity{}, nil
	}
	s.quotes[i].Status = string(status)
	s.quotes[i].LastModifiedAt = quotemodel.FormatTime(s.now())
	return s.quotes[i], nil
}

func (s *QuoteMemoryStore) GetAllReferences(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make([]string, 0, len(s.quotes))
	for _, e := range s.quotes {
		refs = append(refs, e.ReferenceNumber)
	}
	return refs, nil
}

func (s *QuoteMemoryStore) GetAllQuotes(_ context.Context, limit, offset int) ([]entities.QuoteEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := pageWindow(len(s.quotes), limit, offset)
	out := make([]entities.QuoteEntity, end-start)
	copy(out, s.quotes[start:end])
	return out, nil
}

func (s *QuoteMemoryStore) DeleteQuote(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
	return true, nil
}

func (s *QuoteMemoryStore) HealthCheck(_ context.Context) error {
	if s == nil {
		return ErrStoreNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.quotes == nil {
		return ErrStoreNotInitialized
	}
	return nil
}

// indexOf must be called with mu held.
func (s *QuoteMemoryStore) indexOf(id string) int {
	for i, e := range s.quotes {
		if e.ID == id {
			return i
		}
	}
	return -1
}
