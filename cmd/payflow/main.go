package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/payflowhq/payflow/internal/config"
	"github.com/payflowhq/payflow/internal/ledger"
	"github.com/payflowhq/payflow/internal/merchant"
	"github.com/payflowhq/payflow/internal/server"
	"github.com/payflowhq/payflow/internal/store"
	"github.com/payflowhq/payflow/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Fail now rather than at the first log line.
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", "", "path to configuration file")
	listenAddress := flag.String("listen", "", "listen address override, e.g. :8080")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	memoryStore := flag.Bool("memory", false, "use the in-memory record store (records are lost on exit)")
	flag.Parse()

	var conf *config.Configuration
	if *configLocation != "" {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = loaded
	} else {
		conf = config.Default()
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	var records store.Store
	if *memoryStore || conf.Storage.Memory {
		records = store.NewMemory()
		logger.Info("using in-memory record store",
			zap.String("op", "main"),
		)
	} else {
		records = store.NewFileStore(conf.Storage.DataDirectory, logger)
		logger.Info("using file record store",
			zap.String("op", "main"),
			zap.String("dataDirectory", conf.Storage.DataDirectory),
		)
	}

	led := ledger.NewLedger(records, logger)
	merchants := merchant.NewSupplier(
		scanDelay(conf.Scan.CameraDelayMillis),
		scanDelay(conf.Scan.UploadDelayMillis),
	)

	address := conf.Server.Address
	if *listenAddress != "" {
		address = *listenAddress
	}
	if address == "" {
		address = constants.DefaultServerAddress
	}

	handler := server.NewHandler(logger, server.Options{
		Ledger:         led,
		Merchants:      merchants,
		OpeningBalance: conf.Account.OpeningBalance,
		Version:        version,
		AllowedOrigins: conf.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", "main"),
			zap.String("address", address),
			zap.String("version", version),
		)
		errs <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case sig := <-stop:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// scanDelay converts a configured millisecond value into a duration, treating
// negative values as no delay.
func scanDelay(millis int) time.Duration {
	if millis < 0 {
		return 0
	}
	return time.Duration(millis) * time.Millisecond
}
