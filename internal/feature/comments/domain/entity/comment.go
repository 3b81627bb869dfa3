// Package entity defines the domain models for the comments feature.
package entity

import (
	"time"

	stockentity "github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
)

// Comment is a user-authored note attached to exactly one stock.
// UserID records the owner; mutation is restricted to the owner or an
// admin. The stock foreign key cascades so deleting a stock removes
// its comments rather than orphaning them.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"size:300;not null" json:"content"`

	StockID uint               `gorm:"not null;index" json:"stockId"`
	Stock   *stockentity.Stock `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	UserID uint `gorm:"not null;index" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
