package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"squote/internal/config"
	"squote/internal/service"
	"squote/internal/store"
	"squote/internal/store/dynamo"
	"squote/internal/store/file"
	"squote/internal/store/memory"
	pgstore "squote/internal/store/postgres"
	redisstore "squote/internal/store/redis"
)

const connectTimeout = 10 * time.Second

type app struct {
	cfg    config.Config
	logger *logrus.Logger
	kv     store.KV
	svc    *service.Service
}

func main() {
	root, a := newRootCmd()
	if err := execute(root, a); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and closes the backend afterwards, also
// when the command failed.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	if closeErr := a.close(); closeErr != nil {
		fmt.Fprintf(root.ErrOrStderr(), "close backend: %v\n", closeErr)
		if err == nil {
			err = closeErr
		}
	}
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:          "squote",
		Short:        "Build, store and export event quotations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}

	root.AddCommand(newCatalogCmd(a), newQuoteCmd(a))
	return root, a
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a.cfg = config.Load()
	a.logger = config.NewLogger(a.cfg)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	kv, err := openBackend(connectCtx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.kv = kv

	svc, err := service.New(ctx, kv, a.logger)
	if err != nil {
		_ = kv.Close()
		return fmt.Errorf("load data: %w", err)
	}
	a.svc = svc
	return nil
}

func (a *app) close() error {
	if a.kv == nil {
		return nil
	}
	err := a.kv.Close()
	a.kv = nil
	return err
}

// openBackend connects the configured key-value backend. A backend that is
// configured but unreachable is an error; there is no silent fallback.
func openBackend(ctx context.Context, cfg config.Config, logger *logrus.Logger) (store.KV, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Info("backend: in-memory")
		return memory.New(), nil

	case config.BackendFile:
		fs, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("file backend: %w", err)
		}
		logger.WithField("dir", fs.Dir()).Info("backend: file")
		return fs, nil

	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires DATABASE_URL")
		}
		pg, err := pgstore.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres unavailable: %w", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = pg.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		logger.Info("backend: postgres")
		return pg, nil

	case config.BackendRedis:
		rs := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("redis unavailable: %w", err)
		}
		logger.WithField("addr", cfg.RedisAddr).Info("backend: redis")
		return rs, nil

	case config.BackendDynamoDB:
		ds, err := dynamo.New(ctx, dynamoOptions(cfg))
		if err != nil {
			return nil, err
		}
		logger.WithField("table", cfg.DynamoTable).Info("backend: dynamodb")
		return ds, nil

	default:
		return nil, fmt.Errorf("unknown backend %q (want memory, file, postgres, redis or dynamodb)", cfg.Backend)
	}
}

// dynamoOptions passes static keys through only when both are set; otherwise
// the default AWS credential chain applies.
func dynamoOptions(cfg config.Config) dynamo.Options {
	return dynamo.Options{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoEndpoint,
		Table:           cfg.DynamoTable,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretKey,
	}
}
