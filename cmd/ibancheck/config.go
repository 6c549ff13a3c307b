package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type config struct {
	Env             string        `env:"APP_ENV" envDefault:"production"`
	Workers         int           `env:"IBAN_WORKERS" envDefault:"0"`
	HTTPAddr        string        `env:"IBAN_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr        string        `env:"IBAN_GRPC_ADDR"`
	ShutdownTimeout time.Duration `env:"IBAN_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// loadConfig reads the process environment, after a .env file in the working
// directory when one exists.
func loadConfig() (config, error) {
	_ = godotenv.Load()
	return env.ParseAs[config]()
}
