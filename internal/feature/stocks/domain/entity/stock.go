// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Stock represents a financial instrument in the local catalog.
// Symbol is the logical key: it is unique across the catalog and is
// what synchronization with the market-data provider keys on. ID is
// assigned by the store and never comes from the provider.
type Stock struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Symbol      string  `gorm:"size:20;not null;uniqueIndex" json:"symbol"`
	CompanyName string  `gorm:"size:255;not null" json:"companyName"`
	Purchase    float64 `gorm:"not null" json:"purchase"`
	LastDiv     float64 `gorm:"not null;default:0" json:"lastDiv"`
	Industry    string  `gorm:"size:255" json:"industry"`
	MarketCap   int64   `gorm:"not null;default:0" json:"marketCap"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
