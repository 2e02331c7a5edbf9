package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load reads and parses a fairscan configuration file.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (File, error) {
	var cfg File

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadServer builds server settings from defaults, the optional file and env
func LoadServer(path string, lookup LookupFunc) (Server, error) {
	cfg := DefaultServer()

	if path != "" {
		file, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg.merge(file.Server)
	}

	cfg.applyEnv(lookup)
	return cfg, nil
}

// LoadClient builds client settings from defaults, the optional file and env
func LoadClient(path string, lookup LookupFunc) (Client, error) {
	cfg := DefaultClient()

	if path != "" {
		file, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg.merge(file.Client)
	}

	cfg.applyEnv(lookup)
	return cfg, nil
}

// merge переносит заданные в файле значения поверх текущих
func (c *Server) merge(f Server) {
	setString(&c.Addr, f.Addr)
	setString(&c.DatabasePath, f.DatabasePath)
	setString(&c.JWTSecret, f.JWTSecret)
	setString(&c.Questionnaires, f.Questionnaires)
	setString(&c.LogLevel, f.LogLevel)
	if f.AccessTokenTTL != 0 {
		c.AccessTokenTTL = f.AccessTokenTTL
	}
	if f.RateWindow != 0 {
		c.RateWindow = f.RateWindow
	}
	if f.RateLimit != 0 {
		c.RateLimit = f.RateLimit
	}
}

func (c *Server) applyEnv(lookup LookupFunc) {
	if lookup == nil {
		return
	}
	setEnv(lookup, EnvServerAddr, &c.Addr)
	setEnv(lookup, EnvDatabase, &c.DatabasePath)
	setEnv(lookup, EnvJWTSecret, &c.JWTSecret)
}

func (c *Client) merge(f Client) {
	setString(&c.ServerURL, f.ServerURL)
	setString(&c.QRSecret, f.QRSecret)
	setString(&c.AccessToken, f.AccessToken)
	setString(&c.UserID, f.UserID)
	setString(&c.DBPath, f.DBPath)
	setString(&c.Scheme, f.Scheme)
	setString(&c.LogLevel, f.LogLevel)
	if f.Timeout != 0 {
		c.Timeout = f.Timeout
	}
	if f.Offline {
		c.Offline = true
	}
}

func (c *Client) applyEnv(lookup LookupFunc) {
	if lookup == nil {
		return
	}
	setEnv(lookup, EnvServerURL, &c.ServerURL)
	setEnv(lookup, EnvQRSecret, &c.QRSecret)
	setEnv(lookup, EnvAccessToken, &c.AccessToken)
	setEnv(lookup, EnvUserID, &c.UserID)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setEnv(lookup LookupFunc, key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}
