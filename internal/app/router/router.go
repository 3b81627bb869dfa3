// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/btw02/Stock-Manager/internal/feature/auth/transport/handler"
	commenthandler "github.com/btw02/Stock-Manager/internal/feature/comments/transport/handler"
	stockhandler "github.com/btw02/Stock-Manager/internal/feature/stocks/transport/handler"
	jwtmw "github.com/btw02/Stock-Manager/internal/platform/jwt"
)

// Health handles the /healthz liveness endpoint.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}

// NewRouter builds the gin engine with all routes registered.
// Catalog reads and comment writes need authentication; catalog
// mutation additionally needs the admin role.
func NewRouter(auth *authhandler.AuthHandler, stocks *stockhandler.StockHandler,
	comments *commenthandler.CommentHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Unauthenticated
	r.GET("/healthz", Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/stocks", stocks.List)
		authed.GET("/stocks/:id", stocks.Get)
		authed.POST("/stocks/import/:symbol", stocks.Import)

		authed.GET("/stocks/:id/comments", comments.ListForStock)
		authed.POST("/stocks/:id/comments", comments.Create)
		authed.PUT("/comments/:id", comments.Update)
		authed.DELETE("/comments/:id", comments.Delete)
	}

	// Catalog mutation is admin only
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(), jwtmw.RequireAdmin())
	{
		admin.POST("/stocks", stocks.Create)
		admin.PUT("/stocks/:id", stocks.Update)
		admin.DELETE("/stocks/:id", stocks.Delete)
	}

	return r
}
