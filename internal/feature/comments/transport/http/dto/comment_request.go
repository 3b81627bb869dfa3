// Package dto defines data transfer objects for the comments
// feature's HTTP transport layer.
package dto

// CommentReq is the request body for comment create and update.
// Bounds follow the catalog's comment rules: title 3-100 characters,
// content 3-300 characters.
type CommentReq struct {
	Title   string `json:"title" binding:"required,min=3,max=100"`
	Content string `json:"content" binding:"required,min=3,max=300"`
}
