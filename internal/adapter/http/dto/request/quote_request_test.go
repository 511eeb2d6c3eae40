package request

import (
	"encoding/json"
	"testing"

	"quote_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
		wantErr    error
	}{
		{name: "defaults", wantLimit: 50, wantOffset: 0},
		{name: "explicit", limit: "10", offset: "20", wantLimit: 10, wantOffset: 20},
		{name: "upper bound", limit: "100", wantLimit: 100},
		{name: "limit too large", limit: "101", wantErr: ErrInvalidLimit},
		{name: "limit zero", limit: "0", wantErr: ErrInvalidLimit},
		{name: "limit not a number", limit: "ten", wantErr: ErrInvalidLimit},
		{name: "limit decimal", limit: "1.5", wantErr: ErrInvalidLimit},
		{name: "negative offset", offset: "-1", wantErr: ErrInvalidOffset},
		{name: "offset not a number", offset: "x", wantErr: ErrInvalidOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := ParsePagination(tt.limit, tt.offset)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestCreateQuoteRequest_Conversion(t *testing.T) {
	var req CreateQuoteRequest
	body := `{
		"items":[{"id":"a","name":"Course","price":350,"quantity":1}],
		"customer":{"firstName":"Jane","lastName":"Doe","email":"jane@x.io","phone":"123","company":"Acme"},
		"comments":"hi",
		"subtotal":1,
		"status":"approved"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, []entities.QuoteItem{{ID: "a", Name: "Course", Price: 350, Quantity: 1}}, req.QuoteItems())
	assert.Equal(t, &entities.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@x.io", Phone: "123", Company: "Acme"}, req.QuoteCustomer())
	assert.Equal(t, "hi", req.Comments)
}

func TestCreateQuoteRequest_Missing(t *testing.T) {
	var req CreateQuoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"items":[]}`), &req))

	assert.Nil(t, req.QuoteItems())
	assert.Nil(t, req.QuoteCustomer())
}
