package routes

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/database"
	"quote_service/internal/infrastructure/lock"
	"quote_service/internal/infrastructure/metrics"
	"quote_service/internal/infrastructure/notification"
	"quote_service/internal/usecase/interfaces"
)

func newQuoteStore(ctx context.Context, cfg config.StorageConfig, m *metrics.Metrics) (interfaces.IQuoteStore, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating sqlite directory: %w", err)
			}
		}
		db, err := database.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := m.RegisterDB("quotes", db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("registering sqlite metrics: %w", err)
		}
		return repository.NewQuoteSQLiteStore(db), func() { _ = db.Close() }, nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewQuoteDynamoStore(ddb, cfg.DynamoDB.Table), func() {}, nil
	case "memory", "":
		return repository.NewQuoteMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newLocker(ctx context.Context, cfg config.LockConfig, logger *slog.Logger) (interfaces.ILocker, func(), error) {
	switch cfg.Driver {
	case "redis":
		client, err := lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		locker := lock.NewRedisLocker(client, lock.WithTTL(cfg.Redis.TTL), lock.WithLogger(logger))
		return locker, func() { _ = client.Close() }, nil
	case "local", "":
		return lock.NewLocalLocker(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown lock driver %q", cfg.Driver)
	}
}

func newNotifier(cfg config.EmailConfig, logger *slog.Logger) interfaces.INotifier {
	if cfg.Driver == "smtp" {
		return notification.NewSMTPNotifier(notification.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.From,
			To:       cfg.To,
			Timeout:  cfg.SMTP.Timeout,
		})
	}
	return notification.NewLogNotifier(logger)
}
