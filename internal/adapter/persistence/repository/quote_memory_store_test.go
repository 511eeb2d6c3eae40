package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMemoryStore_Contract(t *testing.T) {
	store := NewQuoteMemoryStore(WithMemoryClock(func() time.Time { return contractUpdateTime }))
	testStoreContract(t, store)
}

func TestQuoteMemoryStore_HealthCheck(t *testing.T) {
	var nilStore *QuoteMemoryStore
	assert.ErrorIs(t, nilStore.HealthCheck(context.Background()), ErrStoreNotInitialized)

	assert.ErrorIs(t, (&QuoteMemoryStore{}).HealthCheck(context.Background()), ErrStoreNotInitialized)
}

func TestQuoteMemoryStore_GetAllQuotesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewQuoteMemoryStore()
	_, err := store.CreateQuote(ctx, sampleEntity("id-1", "GT-2024-0001", "2024-01-01T10:00:00.000Z"))
	require.NoError(t, err)

	page, err := store.GetAllQuotes(ctx, 10, 0)
	require.NoError(t, err)
	page[0].Status = "rejected"

	got, err := store.FindQuoteByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, limit, offset   int
		wantStart, wantEnd int
	}{
		{"full", 5, 50, 0, 0, 5},
		{"middle", 5, 2, 1, 1, 3},
		{"past end", 5, 2, 7, 5, 5},
		{"negative offset", 5, 2, -1, 0, 2},
		{"empty", 0, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pageWindow(tt.n, tt.limit, tt.offset)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
