package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/config"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/handler"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/logger"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/session"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/model/store"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger.Info("Fintrack init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Setup(conf.App().ServiceName())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	if conf.Server().Env() == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handle := store.Connect(ctx, conf.Mongo())
	if handle.Available() {
		logger.Info("connected to document store")
	} else {
		logger.Info("running on in-memory storage")
	}
	defer func() {
		if err := handle.Close(context.Background()); err != nil {
			logger.Error("failed to close document store", zap.Error(err))
		}
	}()

	userStore := store.New(handle)
	sessions := session.NewManager(userStore)

	server := &http.Server{
		Addr:    ":" + conf.Server().Port(),
		Handler: handler.New(sessions, userStore),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	logger.Info("Fintrack init - end", zap.String("port", conf.Server().Port()))

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
