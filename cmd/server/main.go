package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/btw02/Stock-Manager/internal/app/di"
	"github.com/btw02/Stock-Manager/internal/app/router"
	authadapters "github.com/btw02/Stock-Manager/internal/feature/auth/adapters"
	authhandler "github.com/btw02/Stock-Manager/internal/feature/auth/transport/handler"
	authusecase "github.com/btw02/Stock-Manager/internal/feature/auth/usecase"
	commentadapters "github.com/btw02/Stock-Manager/internal/feature/comments/adapters"
	commenthandler "github.com/btw02/Stock-Manager/internal/feature/comments/transport/handler"
	commentusecase "github.com/btw02/Stock-Manager/internal/feature/comments/usecase"
	stockadapters "github.com/btw02/Stock-Manager/internal/feature/stocks/adapters"
	stockhandler "github.com/btw02/Stock-Manager/internal/feature/stocks/transport/handler"
	stockusecase "github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
	infradb "github.com/btw02/Stock-Manager/internal/platform/db"
	jwtmw "github.com/btw02/Stock-Manager/internal/platform/jwt"
	infraredis "github.com/btw02/Stock-Manager/internal/platform/redis"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional; sessions fall back to the database without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to database sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	stockRepo := stockadapters.NewStockRepository(db)
	commentRepo := commentadapters.NewCommentRepository(db)
	stockReader := commentadapters.NewStockReader(db)
	market := di.NewMarket()

	// Usecase
	generator := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, generator)
	stockUC := stockusecase.NewStockUsecase(stockRepo, market)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, stockReader)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	commentH := commenthandler.NewCommentHandler(commentUC)

	r := router.NewRouter(authH, stockH, commentH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
