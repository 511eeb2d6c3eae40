package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/lock"
	"quote_service/internal/infrastructure/metrics"
	"quote_service/internal/infrastructure/notification"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := newQuoteStore(ctx, config.StorageConfig{Driver: "memory"}, nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.QuoteMemoryStore{}, store)
		assert.NoError(t, store.HealthCheck(ctx))
	})

	t.Run("sqlite creates the directory and schema", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "quotes.db")
		store, closeFn, err := newQuoteStore(ctx, config.StorageConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: path},
		}, nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.QuoteSQLiteStore{}, store)

		refs, err := store.GetAllReferences(ctx)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("sqlite exports pool stats", func(t *testing.T) {
		m := metrics.New()
		_, closeFn, err := newQuoteStore(ctx, config.StorageConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "quotes.db")},
		}, m)
		require.NoError(t, err)
		defer closeFn()

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Contains(t, rec.Body.String(), `go_sql_max_open_connections{db_name="quotes"}`)
	})

	t.Run("dynamodb", func(t *testing.T) {
		store, closeFn, err := newQuoteStore(ctx, config.StorageConfig{
			Driver: "dynamodb",
			DynamoDB: config.DynamoDBConfig{
				Region:          "eu-west-1",
				Endpoint:        "http://localhost:8000",
				Table:           "quotes",
				AccessKeyID:     "local",
				SecretAccessKey: "local",
			},
		}, nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.QuoteDynamoStore{}, store)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := newQuoteStore(ctx, config.StorageConfig{Driver: "mongo"}, nil)
		assert.ErrorContains(t, err, `unknown storage driver "mongo"`)
	})
}

func TestNewLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("local", func(t *testing.T) {
		l, closeFn, err := newLocker(ctx, config.LockConfig{Driver: "local"}, nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &lock.LocalLocker{}, l)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		l, closeFn, err := newLocker(ctx, config.LockConfig{
			Driver: "redis",
			Redis:  config.RedisConfig{Addr: mr.Addr()},
		}, nil)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &lock.RedisLocker{}, l)

		unlock, err := l.Lock(ctx, "quote-reference:2024")
		require.NoError(t, err)
		assert.True(t, mr.Exists("lock:quote-reference:2024"))
		unlock()
		assert.False(t, mr.Exists("lock:quote-reference:2024"))
	})

	t.Run("redis unreachable", func(t *testing.T) {
		_, _, err := newLocker(ctx, config.LockConfig{
			Driver: "redis",
			Redis:  config.RedisConfig{Addr: "127.0.0.1:1"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := newLocker(ctx, config.LockConfig{Driver: "etcd"}, nil)
		assert.Error(t, err)
	})
}

func TestNewNotifier(t *testing.T) {
	assert.IsType(t, &notification.LogNotifier{}, newNotifier(config.EmailConfig{Driver: "log"}, nil))
	assert.IsType(t, &notification.SMTPNotifier{}, newNotifier(config.EmailConfig{
		Driver: "smtp",
		From:   "quotes@example.com",
		To:     []string{"sales@example.com"},
		SMTP:   config.SMTPConfig{Host: "smtp.example.com", Port: 587},
	}, nil))
}
