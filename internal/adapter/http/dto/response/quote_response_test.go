package response

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quote_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	created := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:              "q1",
		ReferenceNumber: "GT-2024-0001",
		Items:           []entities.QuoteItem{{ID: "a", Name: "Course", Price: 350, Quantity: 1}},
		Subtotal:        350,
		Total:           350,
		Currency:        "ZAR",
		Status:          entities.QuoteStatusPending,
		CreatedAt:       created,
		ExpiresAt:       created.AddDate(0, 1, 0),
		LastModifiedAt:  created,
	}

	raw, err := json.Marshal(SuccessResponse(q, "Quote created successfully"))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "GT-2024-0001", body["referenceNumber"])
	assert.Equal(t, "Quote created successfully", body["message"])

	quote := body["quote"].(map[string]any)
	assert.Equal(t, "pending", quote["status"])
	assert.Equal(t, 350.0, quote["subtotal"])
	assert.Equal(t, "2024-03-02T10:00:00Z", quote["expiresAt"])
	assert.NotContains(t, quote, "comments")
}

func TestError(t *testing.T) {
	raw, err := json.Marshal(Error("Quote not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Quote not found"}`, string(raw))
}

func TestQuoteList(t *testing.T) {
	raw, err := json.Marshal(QuoteList(nil, 10, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"quotes":[],"pagination":{"limit":10,"offset":0,"count":0}}`, string(raw))

	list := QuoteList([]entities.Quote{{ID: "a"}, {ID: "b"}}, 2, 4)
	assert.Equal(t, Pagination{Limit: 2, Offset: 4, Count: 2}, list.Pagination)
}

func TestHealth(t *testing.T) {
	raw, err := json.Marshal(Healthy(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"healthy","quotesCount":0}`, string(raw))

	raw, err = json.Marshal(Unhealthy(errors.New("store not initialized")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unhealthy","error":"store not initialized"}`, string(raw))
}
