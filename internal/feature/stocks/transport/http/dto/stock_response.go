package dto

import "github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"

// StockItem is the JSON representation of a stock returned by the API.
type StockItem struct {
	ID          uint    `json:"id"`
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Purchase    float64 `json:"purchase"`
	LastDiv     float64 `json:"lastDiv"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap"`
}

// FromEntity maps a domain stock onto its response representation.
func FromEntity(s entity.Stock) StockItem {
	return StockItem{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase,
		LastDiv:     s.LastDiv,
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
	}
}
