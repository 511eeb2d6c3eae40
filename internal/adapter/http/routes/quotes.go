package routes

import (
	"quote_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/api/quotes"
)

func addQuoteRoutes(r gin.IRouter, quoteHandler *handlers.QuoteHandler) {
	quotes := r.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		// gin matches the static segment first, so health never reaches :reference.
		quotes.GET("/health", quoteHandler.Health)
		quotes.GET("/:reference", quoteHandler.GetQuoteByReference)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}
}
