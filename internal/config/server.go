package config

import (
	"os"
	"strconv"
)

type ServerConfig struct {
	Port      int
	JwtSecret string
}

func NewServerConfig() *ServerConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil || port <= 0 {
		port = 8082
	}
	return &ServerConfig{
		Port:      port,
		JwtSecret: os.Getenv("JWT_SECRET"),
	}
}
