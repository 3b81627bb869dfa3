// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/btw02/Stock-Manager/internal/api"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/transport/http/dto"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
)

// StockUsecase defines the stock operations the transport layer needs.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type StockUsecase interface {
	List(ctx context.Context, q usecase.Query) ([]entity.Stock, error)
	Get(ctx context.Context, id uint) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
	Update(ctx context.Context, id uint, stock *entity.Stock) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) (*entity.Stock, error)
	GetOrImport(ctx context.Context, symbol string) (*entity.Stock, bool, error)
}

// StockHandler handles HTTP requests for catalog operations.
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// parseID reads the :id route parameter. A non-numeric id is a 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List handles the catalog read endpoint.
//
// GET /stocks?symbolFilter=&companyNameFilter=&sortBy=&isDescending=&pageNumber=&pageSize=
func (h *StockHandler) List(c *gin.Context) {
	q := dto.QueryFromParams(
		c.Query("symbolFilter"),
		c.Query("companyNameFilter"),
		c.Query("sortBy"),
		c.DefaultQuery("isDescending", "false"),
		c.DefaultQuery("pageNumber", "1"),
		c.Query("pageSize"),
	)

	stocks, err := h.uc.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSortField) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list stocks"})
		return
	}

	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.FromEntity(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /stocks/:id.
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stock, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get stock"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*stock))
}

// Create handles POST /stocks. Responds 201 with a Location header on
// success, 409 when the symbol is already taken.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.StockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	stock, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "symbol already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create stock"})
		return
	}

	slog.Info("stock created", "id", stock.ID, "symbol", stock.Symbol)
	c.Header("Location", fmt.Sprintf("/stocks/%d", stock.ID))
	c.JSON(http.StatusCreated, dto.FromEntity(*stock))
}

// Update handles PUT /stocks/:id as a full replace of the mutable
// fields.
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.StockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	stock, err := h.uc.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
		case errors.Is(err, usecase.ErrSymbolTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "symbol already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update stock"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*stock))
}

// Delete handles DELETE /stocks/:id. The removed record is logged and
// the response is an empty 204.
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete stock"})
		return
	}

	slog.Info("stock deleted", "id", deleted.ID, "symbol", deleted.Symbol)
	c.Status(http.StatusNoContent)
}

// Import handles POST /stocks/import/:symbol: the get-or-import flow
// against the market-data provider. Responds 200 when the symbol was
// already in the catalog, 201 when it was imported on this call, 404
// when the provider does not know it either, and 502 when the
// provider is unreachable.
func (h *StockHandler) Import(c *gin.Context) {
	symbol := c.Param("symbol")

	stock, imported, err := h.uc.GetOrImport(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "symbol not found"})
		case errors.Is(err, usecase.ErrMarketUnavailable):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to import stock"})
		}
		return
	}

	status := http.StatusOK
	if imported {
		status = http.StatusCreated
		c.Header("Location", fmt.Sprintf("/stocks/%d", stock.ID))
	}
	c.JSON(status, dto.FromEntity(*stock))
}
