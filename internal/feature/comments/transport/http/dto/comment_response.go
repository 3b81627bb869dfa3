package dto

import (
	"time"

	"github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
)

// CommentItem is the JSON representation of a comment returned by the API.
type CommentItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	StockID   uint      `json:"stockId"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromEntity maps a domain comment onto its response representation.
func FromEntity(c entity.Comment) CommentItem {
	return CommentItem{
		ID:        c.ID,
		Title:     c.Title,
		Content:   c.Content,
		StockID:   c.StockID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
	}
}
