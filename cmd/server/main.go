package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/fairscan/internal/config"
	"github.com/iudanet/fairscan/internal/server"
	"github.com/iudanet/fairscan/internal/server/handlers"
	"github.com/iudanet/fairscan/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	dbPath := flag.String("db", "", "Path to SQLite database (overrides config)")
	questionnaires := flag.String("questionnaires", "", "Path to questionnaire seed file (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Usage = printUsage
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.LoadServer(*configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Флаги имеют наивысший приоритет
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "db":
			cfg.DatabasePath = *dbPath
		case "questionnaires":
			cfg.Questionnaires = *questionnaires
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := config.ValidateServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "token":
			if err := runToken(cfg, args[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			printUsage()
			os.Exit(1)
		}
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if cfg.Questionnaires != "" {
		qs, err := config.LoadQuestionnaires(cfg.Questionnaires)
		if err != nil {
			return err
		}
		if err := server.SeedQuestionnaires(ctx, store, qs); err != nil {
			return err
		}
		logger.Info("Questionnaires loaded", "count", len(qs))
	}

	srv := server.New(cfg, store, logger, Version)
	defer srv.Close()

	logger.Info("Starting fairscan server", "version", Version, "addr", cfg.Addr)
	return srv.ListenAndServe(ctx)
}

// runToken печатает access token для пользователя.
// Используется для выдачи токенов сканерам без отдельного сервиса аутентификации
func runToken(cfg config.Server, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: server token <user-id>")
	}

	token, expiresIn, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}, args[0])
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires in %ds\n", expiresIn)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: server [flags] [token <user-id>]\n\n")
	fmt.Fprintf(os.Stderr, "Environment:\n")
	fmt.Fprintf(os.Stderr, "  %s  secret for signing access tokens (required)\n", config.EnvJWTSecret)
	fmt.Fprintf(os.Stderr, "  %s        listen address\n", config.EnvServerAddr)
	fmt.Fprintf(os.Stderr, "  %s          database path\n\n", config.EnvDatabase)
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Printf("Fairscan Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
