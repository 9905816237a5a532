package config

import "os"

type AppConfig struct {
	DebugMode      bool
	ExecutorConfig *ExecutorConfig
	JudgeConfig    *JudgeConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	ServerConfig   *ServerConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ExecutorConfig: NewExecutorConfig(),
		JudgeConfig:    NewJudgeConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		ServerConfig:   NewServerConfig(),
	}
}
