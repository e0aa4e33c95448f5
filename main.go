package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/relief-board/board"
	"github.com/danielhkuo/relief-board/cliparse"
	"github.com/danielhkuo/relief-board/db"
	"github.com/danielhkuo/relief-board/middleware"
	"github.com/danielhkuo/relief-board/render"
	"github.com/danielhkuo/relief-board/router"
	"github.com/danielhkuo/relief-board/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Load the board
	b, err := board.Open(context.Background(), store.New(dbConn, cfg.StoreKey), board.Options{
		Lifecycle: cfg.Lifecycle,
	})
	if err != nil {
		slog.Error("failed to load board", "error", err, "key", cfg.StoreKey)
		os.Exit(1)
	}

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(b, renderer, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "lifecycle", cfg.Lifecycle)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
