package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "quote_service/internal/adapter/http/dto/request"
	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload  = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// QuoteHandler handles the /api/quotes endpoints.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Description  Validates items and customer, assigns the next GT-YYYY-NNNN reference, computes totals and expiry, stores the quote and sends a best-effort notification.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.CreateQuoteRequest  true  "Quote request"
// @Success      201    {object}  response.QuoteResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteInput{
		Items:    payload.QuoteItems(),
		Customer: payload.QuoteCustomer(),
		Currency: payload.Currency,
		Comments: payload.Comments,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(q, "Quote created successfully"))
}

// GetQuoteByReference godoc
// @Summary      Get a quote by reference
// @Tags         quotes
// @Produce      json
// @Param        reference  path      string  true  "Reference number"  example(GT-2024-0001)
// @Success      200        {object}  response.QuoteResponse
// @Failure      400        {object}  response.ErrorResponse
// @Failure      404        {object}  response.ErrorResponse
// @Failure      500        {object}  response.ErrorResponse
// @Router       /api/quotes/{reference} [get]
func (h *QuoteHandler) GetQuoteByReference(c *gin.Context) {
	q, err := h.usecase.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse(q, "Quote retrieved successfully"))
}

// ListQuotes godoc
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        limit   query     int  false  "Page size (1-100)"  default(50)
// @Param        offset  query     int  false  "Items to skip"      default(0)
// @Success      200     {object}  response.QuoteListResponse
// @Failure      400     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	limit, offset, err := request.ParsePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAGINATION", capitalize(err.Error()), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quotes, err := h.usecase.List(c.Request.Context(), limit, offset)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteList(quotes, limit, offset))
}

// UpdateQuoteStatus godoc
// @Summary      Change a quote's status
// @Description  Any status may follow any other; lastModifiedAt is re-stamped on every call.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id      path      string                             true  "Quote ID"
// @Param        status  body      request.UpdateQuoteStatusRequest  true  "New status (pending, approved, rejected, expired)"
// @Success      200     {object}  response.QuoteResponse
// @Failure      400     {object}  response.ErrorResponse
// @Failure      404     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse(q, "Quote status updated successfully"))
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Message("Quote deleted successfully"))
}

// Health godoc
// @Summary      Quote store health
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Failure      503  {object}  response.UnhealthyResponse
// @Router       /api/quotes/health [get]
func (h *QuoteHandler) Health(c *gin.Context) {
	count, err := h.usecase.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Unhealthy(err))
		return
	}

	c.JSON(http.StatusOK, response.Healthy(count))
}

func mapQuoteError(err error) *pkg.AppError {
	var verr *quotemodel.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Message, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingItems):
		return pkg.NewDomainErrorSimple("MISSING_ITEMS", "Quote must contain at least one item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomer):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER", "Customer information is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Invalid reference number format. Expected GT-YYYY-NNNN", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Quote ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status. Must be one of: pending, approved, rejected, expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_PAGINATION", "Invalid pagination parameters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "", err, http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
