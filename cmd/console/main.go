package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/solo/internal/config"
	"github.com/iamasit07/4-in-a-row/solo/internal/repository/postgres"
	"github.com/iamasit07/4-in-a-row/solo/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/solo/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/solo/internal/service/game"
	"github.com/iamasit07/4-in-a-row/solo/internal/transport/console"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Game history (optional)
	var repo game.GameRepository
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = postgres.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Printf("[DB] History disabled: %v", err)
		} else if err := postgres.RunMigrations(db); err != nil {
			log.Printf("[DB] Migration failed, history disabled: %v", err)
		} else {
			repo = postgres.NewGameRepo(db)
		}
	}
	if db != nil {
		defer db.Close()
	}

	// 2. Move cache (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache bot.Cache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 3. Services
	engine := bot.NewEngine(cache, cfg.MoveCacheTTL)
	gameService := game.NewService(repo, engine, cfg.HumanFirst)

	// 4. Console loop
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := console.NewHandler(gameService, os.Stdin, os.Stdout, cfg.ClearScreen, cfg.RestartDelay)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game loop stopped: %v", err)
	}
}
