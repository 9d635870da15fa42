package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/logger"
)

const defaultTimeout = 2 * time.Second

type mongoConfig interface {
	URI() string
	Database() string
	Collection() string
	TimeoutSeconds() int64
}

// Handle is the connection result Connect hands back. It is passed
// around explicitly; the zero value is an unavailable handle.
type Handle struct {
	users *mongo.Collection
}

func (h *Handle) Available() bool {
	return h != nil && h.users != nil
}

// Connect dials the document store. It never fails: when the server
// cannot be reached within the configured budget the handle comes back
// unavailable and every session runs on in-process memory instead.
func Connect(ctx context.Context, cfg mongoConfig) *Handle {
	timeout := time.Duration(cfg.TimeoutSeconds()) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI()).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Warn("document store unavailable", zap.Error(err))
		return &Handle{}
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		logger.Warn("document store unavailable", zap.Error(err))
		return &Handle{}
	}

	return &Handle{users: client.Database(cfg.Database()).Collection(cfg.Collection())}
}

// Close releases the underlying client when one was established.
func (h *Handle) Close(ctx context.Context) error {
	if !h.Available() {
		return nil
	}
	return h.users.Database().Client().Disconnect(ctx)
}
