package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/JadKHaddad/JobHub/internal/api"
	"github.com/JadKHaddad/JobHub/internal/api/handlers"
	"github.com/JadKHaddad/JobHub/internal/config"
	"github.com/JadKHaddad/JobHub/internal/facade"
	"github.com/JadKHaddad/JobHub/internal/jobs"
	"github.com/JadKHaddad/JobHub/internal/storage"
	"github.com/JadKHaddad/JobHub/internal/streaming"
)

func main() {
	// Load .env file if present (development convenience).
	_ = godotenv.Load()             // server/.env
	_ = godotenv.Load("../.env")    // running from server/ -> project root .env
	_ = godotenv.Load("../../.env") // running from server/cmd/*/ -> project root .env

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)
	slog.Info("starting JobHub control plane", "addr", cfg.SocketAddress, "env", cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := streaming.NewBus()

	registry := jobs.NewRegistry(jobs.Config{
		APIToken:       cfg.APIToken,
		ProjectsDir:    cfg.ProjectsDir,
		DefaultTimeout: time.Duration(cfg.DefaultTimeoutSec) * time.Second,
		RetentionDelay: time.Duration(cfg.RetentionSec) * time.Second,
	}, bus)

	// Every domain-stack integration below is optional and non-critical:
	// a failure to connect is logged and the control plane keeps running
	// with that integration disabled, exactly as the teacher treats a
	// failed S3 client as non-fatal at startup.
	var redisPing, s3Ping, bleveProbe, natsPing handlers.PingFunc

	if cfg.RedisURL != "" {
		redisClient, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("status cache disabled: redis connection failed", "error", err)
		} else {
			registry.SetStatusCache(jobs.NewStatusCache(redisClient, time.Duration(cfg.RetentionSec)*time.Second))
			redisPing = redisClient.Ping
		}
	}

	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewS3Client(ctx, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, cfg.S3SkipBucketVerification)
		if err != nil {
			slog.Warn("archival mirror disabled: s3 client initialization failed", "error", err)
		} else {
			registry.SetMirror(jobs.NewMirror(s3Client))
			s3Ping = s3Client.Ping
		}
	}

	if cfg.BleveIndexDir != "" {
		registry.SetSearchIndex(jobs.NewSearchIndex(cfg.BleveIndexDir))
		bleveProbe = func(ctx context.Context) error { return nil }
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			slog.Warn("audit sink disabled: nats connection failed", "error", err)
		} else {
			defer natsConn.Close()
			registry.SetAudit(jobs.NewAudit(natsConn))
			natsPing = func(ctx context.Context) error {
				if natsConn.Status() != nats.CONNECTED {
					return natsConn.LastError()
				}
				return nil
			}
		}
	}

	f := facade.New(registry, bus)

	router := api.NewRouter(api.RouterConfig{
		AllowedOrigins:            cfg.ServerURLs,
		APIToken:                  cfg.APIToken,
		HealthHandler:             handlers.NewHealthHandler(redisPing, s3Ping, bleveProbe, natsPing),
		RequestChatIDHandler:      handlers.NewRequestChatIDHandler(f),
		DownloadZipFileHandler:    handlers.NewDownloadZipFileHandler(f),
		ConverterHandler:          handlers.NewConverterHandler(f),
		CancelHandler:             handlers.NewCancelHandler(f),
		StatusHandler:             handlers.NewStatusHandler(f),
		ListLogFilesHandler:       handlers.NewListLogFilesHandler(f),
		GetLogFileTextHandler:     handlers.NewGetLogFileTextHandler(f),
		SearchProjectFilesHandler: handlers.NewSearchProjectFilesHandler(f),
		WSHandler:                 handlers.NewWSHandler(f, cfg.ServerURLs),
	})

	srv := &http.Server{
		Addr:         cfg.SocketAddress,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("JobHub control plane stopped")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
