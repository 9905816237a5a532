package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/fcv-judge.net/internal/adapter/executor/judge0"
	"gitlab.com/fcv-judge.net/internal/adapter/logging"
	"gitlab.com/fcv-judge.net/internal/adapter/postgres/questionrepository"
	"gitlab.com/fcv-judge.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/fcv-judge.net/internal/adapter/redis/judgestatus"
	"gitlab.com/fcv-judge.net/internal/config"
	"gitlab.com/fcv-judge.net/internal/core/services/judge"
	"gitlab.com/fcv-judge.net/internal/core/services/orchestrate"
	"gitlab.com/fcv-judge.net/internal/core/services/verdict"
	"gitlab.com/fcv-judge.net/internal/handlers"
	http2 "gitlab.com/fcv-judge.net/internal/http"
)

func main() {
	// .env is optional; real deployments configure the environment directly
	_ = godotenv.Load()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger := logging.NewZapLogger()
	logger.Info("Starting judge service")

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	questionPort := questionrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	submissionPort := submissionrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	statusPort := judgestatus.NewStatusRepository(redisClient, logger, sysCfg.JudgeConfig.StatusTTL)
	executor := judge0.NewExecutionClient(sysCfg.ExecutorConfig, logger)

	// SERVICES
	orchestrator := orchestrate.NewOrchestratorService(executor, logger, sysCfg.JudgeConfig.CaseMargin)
	verdictSvc := verdict.NewVerdictService()
	judgeSvc := judge.NewJudgeService(
		questionPort,
		submissionPort,
		statusPort,
		executor,
		orchestrator,
		verdictSvc,
		logger,
		sysCfg.JudgeConfig,
	)
	serviceProvider := http2.NewServiceProvider(judgeSvc)

	// SERVER
	middleware := handlers.New(sysCfg.ServerConfig.JwtSecret)
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, "judgeService", *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init HTTP server", "error", err)
		os.Exit(1)
	}
	httpServer.Start(context.Background())

	<-quit
	logger.Info("Shutting down server...")
	httpServer.Stop()
	logger.Info("successfully shutdown server")
}

func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}
