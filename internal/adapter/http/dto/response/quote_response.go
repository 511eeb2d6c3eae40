package response

import (
	"quote_service/internal/domain/entities"
)

// QuoteResponse is the body of every single-quote success response.
type QuoteResponse struct {
	Success         bool           `json:"success"`
	Quote           entities.Quote `json:"quote"`
	ReferenceNumber string         `json:"referenceNumber"`
	Message         string         `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type QuoteListResponse struct {
	Success    bool             `json:"success"`
	Quotes     []entities.Quote `json:"quotes"`
	Pagination Pagination       `json:"pagination"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	QuotesCount int    `json:"quotesCount"`
}

type UnhealthyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func SuccessResponse(q entities.Quote, message string) QuoteResponse {
	return QuoteResponse{
		Success:         true,
		Quote:           q,
		ReferenceNumber: q.ReferenceNumber,
		Message:         message,
	}
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// QuoteList echoes the pagination window; Count is the size of this page.
func QuoteList(quotes []entities.Quote, limit, offset int) QuoteListResponse {
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return QuoteListResponse{
		Success: true,
		Quotes:  quotes,
		Pagination: Pagination{
			Limit:  limit,
			Offset: offset,
			Count:  len(quotes),
		},
	}
}

func Message(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

func Healthy(count int) HealthResponse {
	return HealthResponse{Status: "healthy", QuotesCount: count}
}

func Unhealthy(err error) UnhealthyResponse {
	return UnhealthyResponse{Status: "unhealthy", Error: err.Error()}
}
