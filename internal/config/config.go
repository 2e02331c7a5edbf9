// Package config loads settings for the fairscan server and scanner client.
// Values are applied in order: defaults, YAML file, environment, flags.
package config

import "time"

// Environment variables recognised by both binaries
const (
	EnvServerAddr  = "FAIRSCAN_ADDR"
	EnvDatabase    = "FAIRSCAN_DB"
	EnvJWTSecret   = "FAIRSCAN_JWT_SECRET"
	EnvServerURL   = "FAIRSCAN_SERVER"
	EnvQRSecret    = "FAIRSCAN_QR_SECRET"
	EnvAccessToken = "FAIRSCAN_ACCESS_TOKEN"
	EnvUserID      = "FAIRSCAN_USER_ID"
)

// File is the layout of a fairscan YAML config file.
// Either section may be omitted.
type File struct {
	Server Server `yaml:"server"`
	Client Client `yaml:"client"`
}

// Server содержит настройки ledger сервера
type Server struct {
	Addr           string        `yaml:"addr"`
	DatabasePath   string        `yaml:"database_path"`
	JWTSecret      string        `yaml:"jwt_secret"`
	Questionnaires string        `yaml:"questionnaires"` // путь к YAML с анкетами, загружаются при старте
	LogLevel       string        `yaml:"log_level"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`
	RateWindow     time.Duration `yaml:"rate_window"`
	RateLimit      int           `yaml:"rate_limit"`
}

// Client содержит настройки сканера
type Client struct {
	ServerURL   string        `yaml:"server_url"`
	QRSecret    string        `yaml:"qr_secret"`
	AccessToken string        `yaml:"access_token"`
	UserID      string        `yaml:"user_id"`
	DBPath      string        `yaml:"db_path"`
	Scheme      string        `yaml:"scheme"` // схема для mint: "" (AES-CBC) или "x2"
	LogLevel    string        `yaml:"log_level"`
	Timeout     time.Duration `yaml:"timeout"`
	Offline     bool          `yaml:"offline"` // работать только с локальным ledger
}

// DefaultServer returns the server settings used when nothing is configured
func DefaultServer() Server {
	return Server{
		Addr:           ":8080",
		DatabasePath:   "fairscan.db",
		LogLevel:       "info",
		AccessTokenTTL: 24 * time.Hour,
		RateLimit:      120,
		RateWindow:     time.Minute,
	}
}

// DefaultClient returns the client settings used when nothing is configured
func DefaultClient() Client {
	return Client{
		ServerURL: "http://localhost:8080",
		DBPath:    "fairscan-client.db",
		LogLevel:  "warn",
		Timeout:   10 * time.Second,
	}
}
