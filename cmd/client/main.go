package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/fairscan/internal/client/api"
	"github.com/iudanet/fairscan/internal/client/cli"
	"github.com/iudanet/fairscan/internal/client/iocli"
	"github.com/iudanet/fairscan/internal/client/storage/boltdb"
	"github.com/iudanet/fairscan/internal/client/sync"
	"github.com/iudanet/fairscan/internal/config"
	"github.com/iudanet/fairscan/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL")
	dbPath := flag.String("db", "", "Path to local database")
	userID := flag.String("user", "", "Signed-in user ID")
	accessToken := flag.String("token", "", "Access token for the server")
	scheme := flag.String("scheme", "", "Token scheme for mint: cbc or x2")
	qrSecret := flag.String("qr-secret", "", "QR secret (not recommended)")
	qrSecretFile := flag.String("qr-secret-file", "", "Path to file containing the QR secret")
	offline := flag.Bool("offline", false, "Record attendance locally, flush later")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Usage = cli.PrintUsage
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.LoadClient(*configPath, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Флаги имеют наивысший приоритет
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.ServerURL = *serverURL
		case "db":
			cfg.DBPath = *dbPath
		case "user":
			cfg.UserID = *userID
		case "token":
			cfg.AccessToken = *accessToken
		case "scheme":
			cfg.Scheme = *scheme
			if cfg.Scheme == "cbc" {
				cfg.Scheme = string(crypto.SchemeCBC)
			}
		case "qr-secret":
			cfg.QRSecret = *qrSecret
		case "offline":
			cfg.Offline = *offline
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := config.ValidateClient(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(command, args[1:], cfg, *qrSecretFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, cfg config.Client, secretFile string) error {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// Создаем контекст, отменяемый по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := cli.Settings{
		Secrets: cli.Secrets{
			FromEnv:    os.Getenv(config.EnvQRSecret),
			FromFile:   secretFile,
			FromConfig: cfg.QRSecret,
		},
		Scheme:    crypto.Scheme(cfg.Scheme),
		ServerURL: cfg.ServerURL,
		UserID:    cfg.UserID,
		Offline:   cfg.Offline,
	}

	// keygen, mint и decode работают без локальной базы
	if !needsStorage(command) {
		return cli.New(iocli.NewStdio(), nil, nil, settings, logger).Run(ctx, command, args)
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	var (
		remote sync.Remote
		server cli.Server
	)
	if !cfg.Offline {
		// Создаем API клиент
		apiClient := api.NewClient(cfg.ServerURL,
			api.WithAccessToken(cfg.AccessToken),
			api.WithTimeout(cfg.Timeout),
		)
		remote = apiClient
		server = apiClient
	}

	syncService := sync.NewService(remote, boltStorage, boltStorage, boltStorage, logger)

	// Выполняем команду
	return cli.New(iocli.NewStdio(), server, syncService, settings, logger).Run(ctx, command, args)
}

func needsStorage(command string) bool {
	switch command {
	case "scan", "flush", "status":
		return true
	default:
		return false
	}
}

func printVersion() {
	fmt.Printf("fairscan client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
