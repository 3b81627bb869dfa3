// Package db opens the catalog database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "github.com/btw02/Stock-Manager/internal/feature/auth/adapters"
	authentity "github.com/btw02/Stock-Manager/internal/feature/auth/domain/entity"
	commententity "github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
	stockentity "github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
)

// OpenDB connects to postgres with a retry loop, so the service
// survives the database coming up after it in a compose environment.
// TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey, which the adapters rely on.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&stockentity.Stock{},
			&commententity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}
