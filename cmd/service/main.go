package main

import (
	"fmt"

	"gitlab.com/webkontor/contactbook/internal/config"
	"gitlab.com/webkontor/contactbook/internal/logger"
	"gitlab.com/webkontor/contactbook/internal/service"
	"gitlab.com/webkontor/contactbook/internal/store"
	"gitlab.com/webkontor/contactbook/internal/token"
	"go.uber.org/zap"
)

// Usage example on the command line:
// > PORT=8080 DBUSER=webkontor DBPWD=bullo92 JWT_SECRET=changeme GIN_MODE=release GIN_LOGGING=off go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("could not load configuration", err)
		panic(err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("could not set up logging", err)
		panic(err)
	}
	defer logger.L.Sync()
	if cfg.JWTSecret == "" {
		logger.L.Fatal("JWT_SECRET must be set, refusing to sign tokens with an empty secret")
	}
	token.Init(cfg.JWTSecret, cfg.TokenTTL)

	sqlDB := store.CreateDatabase(cfg)
	store.SetupDatabaseWrapper(sqlDB)
	router := service.SetupHttpRouter(cfg)
	logger.L.Info("contact directory listening", zap.Int("port", cfg.Port))
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.L.Fatal("http server stopped", zap.Error(err))
	}
}
