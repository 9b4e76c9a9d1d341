package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config collects every setting of the service. Values are read from
// environment variables, with defaults suitable for local development.
type Config struct {
	Port       int           `env:"PORT" envDefault:"8080"`
	GinLogging string        `env:"GIN_LOGGING" envDefault:"on"`
	DBHost     string        `env:"DBHOST" envDefault:"localhost:3306"`
	DBUser     string        `env:"DBUSER" envDefault:"root"`
	DBPassword string        `env:"DBPWD" envDefault:""`
	DBName     string        `env:"DBNAME" envDefault:"test"`
	JWTSecret  string        `env:"JWT_SECRET" envDefault:""`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string        `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
