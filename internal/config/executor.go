package config

import (
	"os"
	"strconv"
	"time"
)

// ExecutorConfig holds everything the execution client needs to reach the
// remote sandbox. Supplied at construction, never read from ambient state.
type ExecutorConfig struct {
	BaseURL    string
	AuthToken  string
	Timeout    time.Duration
	MaxRetries int
}

func NewExecutorConfig() *ExecutorConfig {
	baseURL := os.Getenv("EXECUTOR_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:2358"
	}
	timeoutSec, err := strconv.Atoi(os.Getenv("EXECUTOR_TIMEOUT_SEC"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}
	retries, err := strconv.Atoi(os.Getenv("EXECUTOR_MAX_RETRIES"))
	if err != nil || retries < 0 {
		retries = 2
	}
	return &ExecutorConfig{
		BaseURL:    baseURL,
		AuthToken:  os.Getenv("EXECUTOR_AUTH_TOKEN"),
		Timeout:    time.Duration(timeoutSec) * time.Second,
		MaxRetries: retries,
	}
}
