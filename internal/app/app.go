package app

import (
	"context"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/CodeWithNeha/Data-Pusher/internal/config"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Server *http.Server
}

func New(cfg *config.Config, logger *slog.Logger, db *gorm.DB, server *http.Server) *App {
	return &App{Config: cfg, Logger: logger, DB: db, Server: server}
}

// Close drains the HTTP server then releases the database pool.
func (a *App) Close(ctx context.Context) error {
	if err := a.Server.Shutdown(ctx); err != nil {
		return err
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
