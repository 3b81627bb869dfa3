// Package dto defines data transfer objects for the Financial
// Modeling Prep API responses.
package dto

// Profile represents one element of the JSON array returned by the
// FMP /profile/{symbol} endpoint. Only the fields the catalog maps
// are declared.
type Profile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Price       float64 `json:"price"`
	LastDiv     float64 `json:"lastDiv"`
	Industry    string  `json:"industry"`
	MktCap      int64   `json:"mktCap"`
}
