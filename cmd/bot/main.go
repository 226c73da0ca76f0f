package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/e-zhenka/letter-exam-bot/internal/client"
	"github.com/e-zhenka/letter-exam-bot/internal/config"
	"github.com/e-zhenka/letter-exam-bot/internal/handler"
	"github.com/e-zhenka/letter-exam-bot/internal/repository/postgres"
	"github.com/e-zhenka/letter-exam-bot/internal/service"
	"github.com/e-zhenka/letter-exam-bot/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Letter Exam Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	letterRepo := postgres.NewLetterRepo(db)
	vocabRepo := postgres.NewVocabularyRepo(db, logger)

	// Initialize session store and services
	sessions := session.NewStore(cfg.TrainingTTL, rand.New(rand.NewSource(time.Now().UnixNano())))
	analyzer := client.NewOpenRouterAPI(cfg.OpenRouterAPIKey, cfg.ModelName)

	letterService := service.NewLetterService(userRepo, letterRepo, vocabRepo, analyzer, logger)
	vocabService := service.NewVocabularyService(vocabRepo)
	trainerService := service.NewTrainerService(vocabRepo, sessions, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, letterService, vocabService, trainerService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session sweep in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSessionSweep(ctx, sessions, cfg.TrainingTTL, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}

// runSessionSweep periodically drops abandoned training sessions
func runSessionSweep(ctx context.Context, sessions *session.Store, ttl time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweep stopped")
			return
		case <-ticker.C:
			if removed := sessions.Sweep(); removed > 0 {
				logger.Info("Swept idle training sessions", zap.Int("removed", removed))
			}
		}
	}
}
