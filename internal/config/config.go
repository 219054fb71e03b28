package config

import (
	"net/http"
	"time"
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

// StorageConfig selects the durable backend. Driver is one of "badger",
// "redis" or "postgres"; badger is the local embedded default.
type StorageConfig struct {
	Driver     string
	BadgerPath string
}
