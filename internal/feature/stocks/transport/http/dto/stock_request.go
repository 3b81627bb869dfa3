// Package dto defines data transfer objects for the stocks feature's
// HTTP transport layer.
package dto

import (
	"strconv"
	"strings"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
)

// StockReq represents the request body for stock create and update.
// Create and update share the same full-replace payload shape.
type StockReq struct {
	Symbol      string  `json:"symbol" binding:"required,min=1,max=20"`
	CompanyName string  `json:"companyName" binding:"required,min=1,max=255"`
	Purchase    float64 `json:"purchase" binding:"min=0"`
	LastDiv     float64 `json:"lastDiv" binding:"min=0"`
	Industry    string  `json:"industry" binding:"max=255"`
	MarketCap   int64   `json:"marketCap" binding:"min=0"`
}

// ToEntity maps the request onto a domain stock. The symbol is
// normalized to upper case, matching the ticker convention the
// provider uses.
func (r StockReq) ToEntity() *entity.Stock {
	return &entity.Stock{
		Symbol:      strings.ToUpper(r.Symbol),
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

// QueryFromParams builds a catalog query from the raw query-string
// parameters of the list endpoint. Unparseable numbers fall back to
// zero and are clamped by Query.Normalize; an unknown sortBy value is
// passed through so the usecase rejects it before any store access.
func QueryFromParams(symbolFilter, companyNameFilter, sortBy, isDescending, pageNumber, pageSize string) usecase.Query {
	page, _ := strconv.Atoi(pageNumber)
	size, _ := strconv.Atoi(pageSize)

	var sort string
	switch strings.ToLower(sortBy) {
	case "":
		sort = ""
	case "symbol":
		sort = usecase.SortBySymbol
	case "marketcap", "market_cap":
		sort = usecase.SortByMarketCap
	default:
		sort = sortBy
	}

	return usecase.Query{
		Symbol:      symbolFilter,
		CompanyName: companyNameFilter,
		SortBy:      sort,
		Descending:  isDescending == "true",
		Page:        page,
		PageSize:    size,
	}
}
