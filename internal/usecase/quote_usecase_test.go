package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/infrastructure/lock"
	"quote_service/internal/infrastructure/metrics"
	mock_interfaces "quote_service/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)

func testModel() *quotemodel.Model {
	return quotemodel.NewModel(
		quotemodel.WithClock(func() time.Time { return testNow }),
		quotemodel.WithIDGenerator(func() string { return "quote-1" }),
	)
}

func validInput() CreateQuoteInput {
	return CreateQuoteInput{
		Items: []entities.QuoteItem{{ID: "a", Name: "Course", Price: 350, Quantity: 1}},
		Customer: &entities.Customer{
			FirstName: "Jane", LastName: "Doe", Email: "jane@x.io", Phone: "0821234567",
		},
	}
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}

type quoteMocks struct {
	repo     *mock_interfaces.MockIQuoteRepository
	notifier *mock_interfaces.MockINotifier
	locker   *mock_interfaces.MockILocker
	metrics  *metrics.Metrics
}

func newQuoteMocks(t *testing.T) (*quoteMocks, *QuoteUseCase) {
	ctrl := gomock.NewController(t)
	m := &quoteMocks{
		repo:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		locker:   mock_interfaces.NewMockILocker(ctrl),
		metrics:  metrics.New(),
	}
	uc := NewQuoteUseCase(m.repo, m.notifier, m.locker, WithModel(testModel()), WithMetrics(m.metrics))
	return m, uc
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing items", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validInput()
		in.Items = nil
		_, err := uc.CreateQuote(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingItems)
	})

	t.Run("missing customer", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validInput()
		in.Customer = nil
		_, err := uc.CreateQuote(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingCustomer)
	})

	t.Run("success holds lock around numbering", func(t *testing.T) {
		m, uc := newQuoteMocks(t)

		released := false
		gomock.InOrder(
			m.locker.EXPECT().Lock(gomock.Any(), "quote-reference:2024").Return(func() { released = true }, nil),
			m.repo.EXPECT().GetExistingReferences(gomock.Any()).Return([]string{"GT-2024-0001", "GT-2023-0009"}, nil),
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) {
					assert.False(t, released, "lock released before persisting")
					return q, nil
				},
			),
			m.notifier.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ entities.Quote) error {
					assert.True(t, released, "notification sent while holding the lock")
					return nil
				},
			),
		)

		q, err := uc.CreateQuote(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, "quote-1", q.ID)
		assert.Equal(t, "GT-2024-0002", q.ReferenceNumber)
		assert.Equal(t, 350.0, q.Subtotal)
		assert.Equal(t, 350.0, q.Total)
		assert.Equal(t, "ZAR", q.Currency)
		assert.Equal(t, entities.QuoteStatusPending, q.Status)
		assert.Equal(t, time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC), q.ExpiresAt)
		assert.Contains(t, scrape(t, m.metrics), "quote_service_quotes_created_total 1")
	})

	t.Run("notification failure is swallowed", func(t *testing.T) {
		m, uc := newQuoteMocks(t)

		m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil)
		m.repo.EXPECT().GetExistingReferences(gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.notifier.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		q, err := uc.CreateQuote(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, "GT-2024-0001", q.ReferenceNumber)
		assert.Contains(t, scrape(t, m.metrics), "quote_service_quote_notification_failures_total 1")
	})

	t.Run("validation error releases lock", func(t *testing.T) {
		m, uc := newQuoteMocks(t)

		released := false
		m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() { released = true }, nil)
		m.repo.EXPECT().GetExistingReferences(gomock.Any()).Return(nil, nil)

		in := validInput()
		in.Items[0].Price = 0
		_, err := uc.CreateQuote(context.Background(), in)

		var verr *quotemodel.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "items[0].price", verr.Field)
		assert.True(t, released)
	})

	t.Run("lock failure", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := uc.CreateQuote(context.Background(), validInput())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "failed to reserve reference number")
	})

	t.Run("repository failure", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil)
		m.repo.EXPECT().GetExistingReferences(gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("failed to create quote: disk full"))

		_, err := uc.CreateQuote(context.Background(), validInput())
		assert.EqualError(t, err, "failed to create quote: disk full")
	})
}

func TestQuoteUseCase_CreateQuote_ConcurrentReferencesAreDistinct(t *testing.T) {
	repo := repository.NewQuoteRepository(repository.NewQuoteMemoryStore())
	uc := NewQuoteUseCase(repo, nil, lock.NewLocalLocker(), WithModel(quotemodel.NewModel(
		quotemodel.WithClock(func() time.Time { return testNow }),
	)))

	const n = 25
	var wg sync.WaitGroup
	refs := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := uc.CreateQuote(context.Background(), validInput())
			if assert.NoError(t, err) {
				refs <- q.ReferenceNumber
			}
		}()
	}
	wg.Wait()
	close(refs)

	seen := map[string]bool{}
	for ref := range refs {
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
	assert.Len(t, seen, n)
	assert.True(t, seen["GT-2024-0025"])
}

func TestQuoteUseCase_GetByReference(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByReference(context.Background(), "BAD-REF")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("not found", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.repo.EXPECT().FindByReference(gomock.Any(), "GT-2024-0001").Return(entities.Quote{}, nil)

		_, err := uc.GetByReference(context.Background(), " GT-2024-0001 ")
		assert.ErrorIs(t, err, ErrQuoteNotFound)
	})

	t.Run("found", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.repo.EXPECT().FindByReference(gomock.Any(), "GT-2024-0001").Return(entities.Quote{ID: "q1", ReferenceNumber: "GT-2024-0001"}, nil)

		q, err := uc.GetByReference(context.Background(), "GT-2024-0001")
		require.NoError(t, err)
		assert.Equal(t, "q1", q.ID)
	})

	t.Run("repository error", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.repo.EXPECT().FindByReference(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("boom"))

		_, err := uc.GetByReference(context.Background(), "GT-2024-0001")
		assert.EqualError(t, err, "boom")
	})
}

func TestQuoteUseCase_List(t *testing.T) {
	for _, tc := range []struct{ limit, offset int }{{0, 0}, {101, 0}, {10, -1}} {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), tc.limit, tc.offset)
		assert.ErrorIs(t, err, ErrInvalidPagination, "limit=%d offset=%d", tc.limit, tc.offset)
	}

	m, uc := newQuoteMocks(t)
	m.repo.EXPECT().List(gomock.Any(), 100, 5).Return([]entities.Quote{{ID: "a"}}, nil)
	quotes, err := uc.List(context.Background(), 100, 5)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "  ", "approved")
		assert.ErrorIs(t, err, ErrInvalidQuoteID)
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q1", "cancelled")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusApproved).Return(entities.Quote{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q1", "approved")
		assert.ErrorIs(t, err, ErrQuoteNotFound)
	})

	t.Run("updated", func(t *testing.T) {
		m, uc := newQuoteMocks(t)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusExpired).
			Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusExpired}, nil)

		q, err := uc.UpdateStatus(context.Background(), "q1", "expired")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusExpired, q.Status)
		assert.Contains(t, scrape(t, m.metrics), `quote_service_quote_status_updates_total{status="expired"} 1`)
	})
}

func TestQuoteUseCase_UpdateStatus_TwiceAdvancesLastModified(t *testing.T) {
	clock := testNow
	store := repository.NewQuoteMemoryStore(repository.WithMemoryClock(func() time.Time { return clock }))
	uc := NewQuoteUseCase(repository.NewQuoteRepository(store), nil, lock.NewLocalLocker(), WithModel(testModel()))

	created, err := uc.CreateQuote(context.Background(), validInput())
	require.NoError(t, err)

	clock = testNow.Add(time.Hour)
	first, err := uc.UpdateStatus(context.Background(), created.ID, "approved")
	require.NoError(t, err)

	clock = testNow.Add(2 * time.Hour)
	second, err := uc.UpdateStatus(context.Background(), created.ID, "approved")
	require.NoError(t, err)

	assert.Equal(t, entities.QuoteStatusApproved, second.Status)
	assert.True(t, second.LastModifiedAt.After(first.LastModifiedAt))
	assert.True(t, testNow.Add(2*time.Hour).Equal(second.LastModifiedAt))
	assert.True(t, created.CreatedAt.Equal(second.CreatedAt))
}

func TestQuoteUseCase_Delete(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), ""), ErrInvalidQuoteID)

	m, uc := newQuoteMocks(t)
	m.repo.EXPECT().Delete(gomock.Any(), "q1").Return(false, nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), "q1"), ErrQuoteNotFound)

	m.repo.EXPECT().Delete(gomock.Any(), "q2").Return(true, nil)
	assert.NoError(t, uc.Delete(context.Background(), "q2"))
	assert.Contains(t, scrape(t, m.metrics), "quote_service_quotes_deleted_total 1")

	m.repo.EXPECT().Delete(gomock.Any(), "q3").Return(false, errors.New("failed to delete quote: boom"))
	assert.EqualError(t, uc.Delete(context.Background(), "q3"), "failed to delete quote: boom")
}

func TestQuoteUseCase_Health(t *testing.T) {
	m, uc := newQuoteMocks(t)

	m.repo.EXPECT().HealthCheck(gomock.Any()).Return(nil)
	m.repo.EXPECT().GetExistingReferences(gomock.Any()).Return([]string{"GT-2024-0001", "GT-2024-0002"}, nil)
	count, err := uc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	m.repo.EXPECT().HealthCheck(gomock.Any()).Return(errors.New("unreachable"))
	_, err = uc.Health(context.Background())
	assert.EqualError(t, err, "unreachable")
}
