package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/validation"
)

// MinJWTSecretLen минимальная длина секрета для подписи HS256
const MinJWTSecretLen = 32

// ValidateServer validates server configuration.
func ValidateServer(cfg Server) error {
	if cfg.Addr == "" {
		return errors.New("server.addr must be set")
	}
	if cfg.DatabasePath == "" {
		return errors.New("server.database_path must be set")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("server.jwt_secret must be set (or %s)", EnvJWTSecret)
	}
	if len(cfg.JWTSecret) < MinJWTSecretLen {
		return fmt.Errorf("server.jwt_secret must be at least %d characters", MinJWTSecretLen)
	}
	if cfg.AccessTokenTTL <= 0 {
		return errors.New("server.access_token_ttl must be positive")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("server.rate_limit must be positive")
	}
	if cfg.RateWindow <= 0 {
		return errors.New("server.rate_window must be positive")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("server.log_level: %w", err)
	}
	return nil
}

// ValidateClient validates client configuration.
// The QR secret is validated only when present: keygen and status run without it.
func ValidateClient(cfg Client) error {
	if !cfg.Offline {
		u, err := url.Parse(cfg.ServerURL)
		if err != nil {
			return fmt.Errorf("invalid client.server_url %q: %w", cfg.ServerURL, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid client.server_url %q: expected http(s)://host", cfg.ServerURL)
		}
	}
	if cfg.DBPath == "" {
		return errors.New("client.db_path must be set")
	}
	if cfg.QRSecret != "" {
		if _, err := crypto.ParseSecret(cfg.QRSecret); err != nil {
			return fmt.Errorf("client.qr_secret: %w", err)
		}
	}
	switch crypto.Scheme(cfg.Scheme) {
	case crypto.SchemeCBC, crypto.SchemeXChaCha:
	default:
		return fmt.Errorf("unknown client.scheme %q", cfg.Scheme)
	}
	if cfg.UserID != "" {
		if err := validation.ValidateIdentifier("client.user_id", cfg.UserID); err != nil {
			return err
		}
	}
	if cfg.Timeout <= 0 {
		return errors.New("client.timeout must be positive")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("client.log_level: %w", err)
	}
	return nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
