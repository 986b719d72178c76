package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/config"
	"github.com/aminbn12/planiunv/internal/api/handler"
	"github.com/aminbn12/planiunv/internal/api/router"
	"github.com/aminbn12/planiunv/internal/repository"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/database"
	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/logger"
	"github.com/aminbn12/planiunv/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		return err
	}
	if err := database.EnsureAdmin(db, &cfg.Bootstrap, zlog); err != nil {
		return err
	}

	// Redis only backs the logout blacklist; the portal stays usable
	// without it.
	rdb, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, zlog)
	h := handler.NewHandler(svc)
	engine := router.New(h, jwtMgr, rdb, cfg, zlog)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zlog.Info("server stopped")
	return nil
}
