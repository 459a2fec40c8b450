package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rentline/rentline/internal/api"
	"github.com/rentline/rentline/internal/api/addresses"
	"github.com/rentline/rentline/internal/api/admin"
	"github.com/rentline/rentline/internal/api/applications"
	"github.com/rentline/rentline/internal/api/assets"
	"github.com/rentline/rentline/internal/api/authapi"
	"github.com/rentline/rentline/internal/api/communications"
	"github.com/rentline/rentline/internal/api/contacts"
	"github.com/rentline/rentline/internal/api/leads"
	"github.com/rentline/rentline/internal/api/leases"
	"github.com/rentline/rentline/internal/api/maintenance"
	"github.com/rentline/rentline/internal/api/payments"
	"github.com/rentline/rentline/internal/api/properties"
	"github.com/rentline/rentline/internal/api/tenants"
	"github.com/rentline/rentline/internal/api/units"
	"github.com/rentline/rentline/internal/api/vacancies"
	"github.com/rentline/rentline/internal/auth"
	"github.com/rentline/rentline/internal/config"
	"github.com/rentline/rentline/internal/database"
	"github.com/rentline/rentline/internal/seed"
	"github.com/rentline/rentline/internal/store"
)

const version = "0.3.0"

func main() {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "rentline",
		Short:         "Mock property management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Migrate the database and load demo data, then exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version)
			},
		},
	)

	if err := root.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if !cfg.SkipSeed {
		if err := seed.Seed(ctx, db); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}

	s := store.New(db)

	authSvc, err := auth.NewService(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	mux := http.NewServeMux()

	contacts.RegisterRoutes(mux, s)
	addresses.RegisterRoutes(mux, s)
	tenants.RegisterRoutes(mux, s)
	properties.RegisterRoutes(mux, s)
	units.RegisterRoutes(mux, s)
	leases.RegisterRoutes(mux, s)
	payments.RegisterRoutes(mux, s)
	maintenance.RegisterRoutes(mux, s)
	vacancies.RegisterRoutes(mux, s)
	leads.RegisterRoutes(mux, s)
	applications.RegisterRoutes(mux, s)
	communications.RegisterRoutes(mux, s)
	assets.RegisterRoutes(mux, s)

	authapi.RegisterRoutes(mux, authSvc)
	admin.RegisterRoutes(mux, s.DB)

	// Catch-all: 404 in the standard envelope.
	mux.HandleFunc("/", api.NotFound)

	handler := api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth(cfg.AuthToken),
		api.JSONContentType(),
		api.Logging(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting rentline server", "addr", cfg.Addr, "db", cfg.DBPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func runSeed() error {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	slog.Info("database seeded", "db", cfg.DBPath)
	return nil
}
