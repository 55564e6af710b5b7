package config

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the shared pgx connection pool used by every handler.
var Pool *pgxpool.Pool

// InitDB loads the config and opens the connection pool.
func InitDB() {
	cfg := MustLoad()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse DATABASE_URL: %v", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	Pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v", err)
	}

	if err := Pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to reach database: %v", err)
	}

	log.Println("Connected to database")
}

// CloseDB releases the pool.
func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
}
