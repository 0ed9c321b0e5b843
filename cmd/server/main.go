package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	adapterlogger "github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_compare/internal/config"
	"github.com/baditaflorin/go_fuzzy_compare/pkg/fuzzy"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := createLogger(cfg.LogFile, cfg.LogJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting fuzzy comparison HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"concurrency", cfg.Concurrency,
		"threshold", cfg.Threshold,
		"character_mode", cfg.CharacterMode,
	)

	opts := []fuzzy.Option{
		fuzzy.WithLogger(logger),
		fuzzy.WithThreshold(cfg.Threshold),
		fuzzy.WithCharacterMode(cfg.Mode()),
		fuzzy.WithWarmUp(cfg.WarmUp),
	}
	if cfg.Markup {
		opts = append(opts, fuzzy.WithMarkupNormalizer())
	}
	comparator, err := fuzzy.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize comparator", "error", err)
		os.Exit(1)
	}
	logger.Info("Comparator initialized successfully",
		"warm_up", cfg.WarmUp,
		"bounds", comparator.Table().Len(),
		"cpus", runtime.NumCPU(),
	)

	h := newHandler(comparator, logger)
	server := &fasthttp.Server{
		Handler:               h.ServeHTTP,
		Name:                  "FuzzyCompareServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		logger.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger creates and configures a logger
func createLogger(logFile string, jsonFormat bool) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lc := adapterlogger.DefaultConfig(output)
	lc.JsonFormat = jsonFormat
	lc.MaxFileSize = 100 * 1024 * 1024 // 100MB

	logger, err := l.NewStandardFactory().CreateLogger(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
