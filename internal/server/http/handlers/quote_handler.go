package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/solvex/cotizaciones/internal/domain/errors"
	"github.com/solvex/cotizaciones/internal/domain/model"
	"github.com/solvex/cotizaciones/internal/server/http/dto"
)

// QuoteHandler manages quote CRUD endpoints.
type QuoteHandler struct {
	facade QuoteFacade
	logger *slog.Logger
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(facade QuoteFacade, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{facade: facade, logger: logger}
}

// List handles GET /api/cotizaciones.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.facade.Quotes(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, "list quotes failed", err)
		return
	}

	response := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		response = append(response, toQuoteResponse(q))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/cotizaciones/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, err := h.facade.QuoteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "quote not found"})
			return
		}
		internalError(c, h.logger, "get quote failed", err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(*quote))
}

// Create handles POST /api/cotizaciones.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	quote, err := h.facade.CreateQuote(c.Request.Context(), model.QuoteDraft{
		Cliente:     req.Cliente,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Fecha:       req.Fecha,
	})
	if err != nil {
		internalError(c, h.logger, "create quote failed", err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(*quote))
}

// Update handles PUT /api/cotizaciones/:id.
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	quote, err := h.facade.UpdateQuote(c.Request.Context(), id, model.QuoteUpdate{
		Cliente:     req.Cliente,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Fecha:       req.Fecha,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "quote not found"})
			return
		}
		internalError(c, h.logger, "update quote failed", err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(*quote))
}

// Delete handles DELETE /api/cotizaciones/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteQuote(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "quote not found"})
			return
		}
		internalError(c, h.logger, "delete quote failed", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toQuoteResponse(quote model.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:          quote.ID,
		Cliente:     quote.Cliente,
		Descripcion: quote.Descripcion,
		Monto:       quote.Monto,
		Fecha:       quote.Fecha,
	}
}
