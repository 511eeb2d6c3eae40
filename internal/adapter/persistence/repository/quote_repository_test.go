package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	mock_interfaces "quote_service/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuote(t *testing.T, existing []string) entities.Quote {
	t.Helper()
	now := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	model := quotemodel.NewModel(
		quotemodel.WithClock(func() time.Time { return now }),
	)
	q, err := model.CreateQuote(quotemodel.CreateQuoteParams{
		Items: []entities.QuoteItem{{ID: "c1", Name: "Course", Price: 100, Quantity: 2}},
		Customer: entities.Customer{
			FirstName: "Jane", LastName: "Doe", Email: "jane@x.io", Phone: "123",
		},
	}, existing)
	require.NoError(t, err)
	return q
}

func TestQuoteRepository_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	updatedAt := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC)
	repo := NewQuoteRepository(NewQuoteMemoryStore(WithMemoryClock(func() time.Time { return updatedAt })))

	q := newQuote(t, nil)
	created, err := repo.Create(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "GT-2024-0001", created.ReferenceNumber)
	assert.Equal(t, 200.0, created.Total)

	found, err := repo.FindByReference(ctx, "GT-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, q.ID, found.ID)
	assert.True(t, q.ExpiresAt.Equal(found.ExpiresAt))
	assert.Equal(t, q.Items, found.Items)

	missing, err := repo.FindByReference(ctx, "GT-2024-0002")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	refs, err := repo.GetExistingReferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"GT-2024-0001"}, refs)

	updated, err := repo.UpdateStatus(ctx, q.ID, entities.QuoteStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusApproved, updated.Status)
	assert.True(t, updatedAt.Equal(updated.LastModifiedAt))
	assert.True(t, q.CreatedAt.Equal(updated.CreatedAt))

	byID, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusApproved, byID.Status)

	list, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, q.ID, list[0].ID)

	deleted, err := repo.Delete(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.HealthCheck(ctx))
}

func TestQuoteRepository_WrapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	repo := NewQuoteRepository(store)

	store.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteEntity{}, boom)
	_, err := repo.Create(ctx, newQuote(t, nil))
	assert.EqualError(t, err, "failed to create quote: disk full")
	assert.ErrorIs(t, err, boom)

	store.EXPECT().FindQuoteByReference(gomock.Any(), "GT-2024-0001").Return(entities.QuoteEntity{}, boom)
	_, err = repo.FindByReference(ctx, "GT-2024-0001")
	assert.EqualError(t, err, "failed to find quote by reference: disk full")

	store.EXPECT().FindQuoteByID(gomock.Any(), "id-1").Return(entities.QuoteEntity{}, boom)
	_, err = repo.FindByID(ctx, "id-1")
	assert.EqualError(t, err, "failed to find quote by id: disk full")

	store.EXPECT().UpdateQuoteStatus(gomock.Any(), "id-1", entities.QuoteStatusRejected).Return(entities.QuoteEntity{}, boom)
	_, err = repo.UpdateStatus(ctx, "id-1", entities.QuoteStatusRejected)
	assert.EqualError(t, err, "failed to update quote status: disk full")

	store.EXPECT().GetAllReferences(gomock.Any()).Return(nil, boom)
	_, err = repo.GetExistingReferences(ctx)
	assert.EqualError(t, err, "failed to get existing references: disk full")

	store.EXPECT().GetAllQuotes(gomock.Any(), 10, 0).Return(nil, boom)
	_, err = repo.List(ctx, 10, 0)
	assert.EqualError(t, err, "failed to list quotes: disk full")

	store.EXPECT().DeleteQuote(gomock.Any(), "id-1").Return(false, boom)
	_, err = repo.Delete(ctx, "id-1")
	assert.EqualError(t, err, "failed to delete quote: disk full")

	store.EXPECT().HealthCheck(gomock.Any()).Return(boom)
	err = repo.HealthCheck(ctx)
	assert.EqualError(t, err, "failed to check quote store health: disk full")
}

func TestQuoteRepository_CorruptEntity(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	repo := NewQuoteRepository(store)

	corrupt := sampleEntity("id-1", "GT-2024-0001", "2024-01-01T10:00:00.000Z")
	corrupt.Items = "{not json"

	store.EXPECT().FindQuoteByReference(gomock.Any(), "GT-2024-0001").Return(corrupt, nil)
	_, err := repo.FindByReference(ctx, "GT-2024-0001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find quote by reference: failed to parse items of quote id-1")

	store.EXPECT().GetAllQuotes(gomock.Any(), 50, 0).Return([]entities.QuoteEntity{corrupt}, nil)
	_, err = repo.List(ctx, 50, 0)
	assert.Error(t, err)
}
