// Package cli implements the fairscan scanner commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/fairscan/internal/client/iocli"
	"github.com/iudanet/fairscan/internal/client/sync"
	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/models"
)

//go:generate moq -out server_mock.go . Server

// Server is the part of the fairscan API the commands call directly.
// Attendance and scan log uploads go through sync.Service instead.
type Server interface {
	// GetQuestionnaire looks up the questionnaire behind an attendance token
	GetQuestionnaire(ctx context.Context, id string) (*models.Questionnaire, error)
	Health(ctx context.Context) error
	ListScanLog(ctx context.Context, limit int) ([]*models.ScanLogEntry, error)
}

// Secrets lists where the QR secret may come from
type Secrets struct {
	FromEnv    string // FAIRSCAN_QR_SECRET
	FromFile   string // путь к файлу с секретом
	FromConfig string // client.qr_secret или --qr-secret
}

// Settings are the resolved client settings the commands need
type Settings struct {
	Secrets   Secrets
	Scheme    crypto.Scheme
	ServerURL string
	UserID    string
	Offline   bool
}

type Cli struct {
	io             iocli.IO
	server         Server
	syncService    sync.Service
	cipher         *crypto.TokenCipher
	logger         *slog.Logger
	now            func() time.Time
	settings       Settings
}

// New creates the CLI. server may be nil in offline mode.
func New(io iocli.IO, server Server, syncService sync.Service, settings Settings, logger *slog.Logger) *Cli {
	return &Cli{
		io:             io,
		server:         server,
		syncService:    syncService,
		settings:       settings,
		logger:         logger,
		now:            time.Now,
	}
}

// Run executes command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "keygen":
		return c.runKeygen()
	case "mint":
		return c.runMint(args)
	case "decode":
		return c.runDecode(args)
	case "scan":
		return c.runScan(ctx)
	case "flush":
		return c.runFlush(ctx)
	case "status":
		return c.runStatus(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// tokenCipher builds the cipher on first use so commands that do not
// touch tokens never ask for the secret.
func (c *Cli) tokenCipher() (*crypto.TokenCipher, error) {
	if c.cipher != nil {
		return c.cipher, nil
	}

	value, err := c.readSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to get QR secret: %w", err)
	}
	secret, err := crypto.ParseSecret(value)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewTokenCipher(secret, crypto.WithScheme(c.settings.Scheme))
	if err != nil {
		return nil, err
	}
	c.cipher = cipher
	return cipher, nil
}

// readSecret retrieves the QR secret from various sources with priority:
// 1. Environment variable FAIRSCAN_QR_SECRET
// 2. File given by --qr-secret-file
// 3. Config file or --qr-secret
// 4. Interactive prompt (fallback)
func (c *Cli) readSecret() (string, error) {
	s := c.settings.Secrets

	// Priority 1: Environment variable
	if s.FromEnv != "" {
		return s.FromEnv, nil
	}

	// Priority 2: File
	if s.FromFile != "" {
		content, err := os.ReadFile(s.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		secret := strings.TrimSpace(string(content))
		if secret == "" {
			return "", errors.New("secret file is empty")
		}
		return secret, nil
	}

	// Priority 3: config
	if s.FromConfig != "" {
		return s.FromConfig, nil
	}

	// Priority 4: Interactive prompt (fallback)
	secret, err := c.io.ReadPassword("QR secret: ")
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}
	return secret, nil
}

func PrintUsage() {
	fmt.Println("fairscan scanner client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fairscan [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --config PATH          Path to YAML config file")
	fmt.Println("  --server URL           Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH              Path to local database (default: fairscan-client.db)")
	fmt.Println("  --user ID              Signed-in user ID")
	fmt.Println("  --token TOKEN          Access token for the server")
	fmt.Println("  --scheme SCHEME        Token scheme for mint: cbc (default) or x2")
	fmt.Println("  --qr-secret SECRET     QR secret (not recommended, use env var or file)")
	fmt.Println("  --qr-secret-file PATH  Path to file containing the QR secret")
	fmt.Println("  --offline              Record attendance locally, flush later")
	fmt.Println()
	fmt.Println("QR Secret Priority (highest to lowest):")
	fmt.Println("  1. FAIRSCAN_QR_SECRET environment variable")
	fmt.Println("  2. --qr-secret-file (file path)")
	fmt.Println("  3. --qr-secret or client.qr_secret in the config file")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  keygen                                Generate a new QR secret")
	fmt.Println("  mint attendance <event> [questionnaire]")
	fmt.Println("                                        Mint an attendance token")
	fmt.Println("  mint company <event> <company>        Mint a company info token")
	fmt.Println("  mint card <user>                      Mint a digital card token")
	fmt.Println("  decode <token>                        Decrypt and show a token")
	fmt.Println("  scan                                  Read tokens from stdin, one per line")
	fmt.Println("  flush                                 Push offline records to the server")
	fmt.Println("  status                                Show pending records")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  export FAIRSCAN_QR_SECRET=$(fairscan keygen)")
	fmt.Println("  fairscan mint attendance evt-42 | fairscan --user u-1 --token $TOKEN scan")
	fmt.Println("  fairscan --offline --user u-1 scan < tokens.txt")
	fmt.Println("  fairscan --token $TOKEN flush")
}
