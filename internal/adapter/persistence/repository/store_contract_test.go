package repository

import (
	"context"
	"testing"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractUpdateTime = time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)

func sampleEntity(id, ref, createdAt string) entities.QuoteEntity {
	return entities.QuoteEntity{
		ID:              id,
		ReferenceNumber: ref,
		Items:           `[{"id":"c1","name":"Course","price":100,"quantity":2}]`,
		Customer:        `{"firstName":"Jane","lastName":"Doe","email":"jane@x.io","phone":"123"}`,
		Subtotal:        200,
		Total:           200,
		Currency:        "ZAR",
		Status:          string(entities.QuoteStatusPending),
		CreatedAt:       createdAt,
		ExpiresAt:       createdAt,
		LastModifiedAt:  createdAt,
	}
}

// testStoreContract exercises a store whose clock returns contractUpdateTime.
func testStoreContract(t *testing.T, store interfaces.IQuoteStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.HealthCheck(ctx))

	refs, err := store.GetAllReferences(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)

	first := sampleEntity("id-1", "GT-2024-0001", "2024-01-01T10:00:00.000Z")
	second := sampleEntity("id-2", "GT-2024-0002", "2024-01-02T10:00:00.000Z")
	third := sampleEntity("id-3", "GT-2024-0003", "2024-01-03T10:00:00.000Z")
	third.Comments = "call after 5pm"

	for _, e := range []entities.QuoteEntity{first, second, third} {
		saved, err := store.CreateQuote(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, e, saved)
	}

	t.Run("find by reference", func(t *testing.T) {
		got, err := store.FindQuoteByReference(ctx, "GT-2024-0003")
		require.NoError(t, err)
		assert.Equal(t, third, got)

		missing, err := store.FindQuoteByReference(ctx, "GT-2024-0099")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("find by id", func(t *testing.T) {
		got, err := store.FindQuoteByID(ctx, "id-2")
		require.NoError(t, err)
		assert.Equal(t, second, got)

		missing, err := store.FindQuoteByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("references in insertion order", func(t *testing.T) {
		refs, err := store.GetAllReferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"GT-2024-0001", "GT-2024-0002", "GT-2024-0003"}, refs)
	})

	t.Run("paging", func(t *testing.T) {
		page, err := store.GetAllQuotes(ctx, 2, 0)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "id-1", page[0].ID)
		assert.Equal(t, "id-2", page[1].ID)

		page, err = store.GetAllQuotes(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "id-3", page[0].ID)

		page, err = store.GetAllQuotes(ctx, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("update status stamps last modified", func(t *testing.T) {
		got, err := store.UpdateQuoteStatus(ctx, "id-1", entities.QuoteStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, "approved", got.Status)
		assert.Equal(t, quotemodel.FormatTime(contractUpdateTime), got.LastModifiedAt)
		assert.Equal(t, first.CreatedAt, got.CreatedAt)

		reread, err := store.FindQuoteByID(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, got, reread)

		missing, err := store.UpdateQuoteStatus(ctx, "nope", entities.QuoteStatusRejected)
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := store.DeleteQuote(ctx, "id-2")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteQuote(ctx, "id-2")
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := store.FindQuoteByID(ctx, "id-2")
		require.NoError(t, err)
		assert.Empty(t, got.ID)

		refs, err := store.GetAllReferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"GT-2024-0001", "GT-2024-0003"}, refs)
	})
}
