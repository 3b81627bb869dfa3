// Package handler provides the HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/btw02/Stock-Manager/internal/api"
	authentity "github.com/btw02/Stock-Manager/internal/feature/auth/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/comments/transport/http/dto"
	"github.com/btw02/Stock-Manager/internal/feature/comments/usecase"
	jwtmw "github.com/btw02/Stock-Manager/internal/platform/jwt"
)

// CommentUsecase defines the comment operations the transport layer
// needs. Following Go convention: interfaces are defined by the
// consumer (handler), not the provider (usecase).
type CommentUsecase interface {
	ListForStock(ctx context.Context, stockID uint) ([]entity.Comment, error)
	Create(ctx context.Context, stockID uint, caller usecase.Caller, title, content string) (*entity.Comment, error)
	Update(ctx context.Context, id uint, caller usecase.Caller, title, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id uint, caller usecase.Caller) error
}

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler creates a new CommentHandler with the given usecase.
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// callerFromContext resolves the authenticated caller set by the JWT
// middleware. The admin capability is decided here, at the boundary;
// the usecase only sees the resolved predicate.
func callerFromContext(c *gin.Context) usecase.Caller {
	return usecase.Caller{
		UserID:  c.GetUint(jwtmw.ContextUserID),
		IsAdmin: c.GetString(jwtmw.ContextRole) == authentity.RoleAdmin,
	}
}

func parseParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListForStock handles GET /stocks/:id/comments.
func (h *CommentHandler) ListForStock(c *gin.Context) {
	stockID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	comments, err := h.uc.ListForStock(c.Request.Context(), stockID)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list comments"})
		return
	}

	out := make([]dto.CommentItem, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.FromEntity(cm))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /stocks/:id/comments. The comment is stamped
// with the authenticated caller as owner; a missing target stock is a
// 404.
func (h *CommentHandler) Create(c *gin.Context) {
	stockID, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	comment, err := h.uc.Create(c.Request.Context(), stockID, callerFromContext(c), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(*comment))
}

// Update handles PUT /comments/:id. Only the owner or an admin may
// update; everyone else gets a 403.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	comment, err := h.uc.Update(c.Request.Context(), id, callerFromContext(c), req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "comment not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update comment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*comment))
}

// Delete handles DELETE /comments/:id under the same owner-or-admin rule.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, callerFromContext(c)); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "comment not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete comment"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
