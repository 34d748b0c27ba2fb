// Package config loads the obs-websocket connection settings from
// ~/.config/obsctl/config.json, with OBS_HOST / OBS_PORT / OBS_PASSWORD
// environment overrides. A .env file in the working directory is honored.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPort is the obs-websocket default listen port.
const DefaultPort = 4455

const defaultHost = "localhost"

// ErrNoConfig is returned by Load when neither a config file nor an
// OBS_HOST environment value exists.
var ErrNoConfig = errors.New("no config file found and OBS_HOST is not set (run `obsctl init`)")

// Config is the connection block for one obs-websocket endpoint. Password
// may be empty when obs-websocket authentication is disabled.
type Config struct {
	Host     string
	Port     int
	Password string
}

type fileConfig struct {
	Connection struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Password string `json:"password"`
	} `json:"connection"`
}

func init() {
	_ = godotenv.Load()
}

// Load reads the config file and applies environment overrides. A malformed
// file is a fatal error; an absent file is fatal only when the environment
// supplies no host either.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	var fc fileConfig
	haveFile := false
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &fc); err != nil {
			return Config{}, fmt.Errorf("malformed config file %s: %w", path, err)
		}
		haveFile = true
	case errors.Is(err, os.ErrNotExist):
		// Fall through to the environment.
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	host := firstNonEmpty(os.Getenv("OBS_HOST"), fc.Connection.Host)
	if host == "" {
		if !haveFile {
			return Config{}, ErrNoConfig
		}
		host = defaultHost
	}

	port := fc.Connection.Port
	if v := os.Getenv("OBS_PORT"); v != "" {
		port, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("malformed OBS_PORT %q: %w", v, err)
		}
	}
	if port == 0 {
		port = DefaultPort
	}

	return Config{
		Host:     host,
		Port:     port,
		Password: firstNonEmpty(os.Getenv("OBS_PASSWORD"), fc.Connection.Password),
	}, nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "obsctl", "config.json"), nil
}

// Save writes c to the config file with owner-only permissions, creating
// the directory as needed.
func Save(c Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var fc fileConfig
	fc.Connection.Host = c.Host
	fc.Connection.Port = c.Port
	fc.Connection.Password = c.Password
	b, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o600)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
