package main

import (
	"errors"
	"fmt"
	"go.alis.build/alog"
	"os"
	"strings"
)

const (
	RepositorySqlite   = "sqlite"
	RepositoryFirebase = "firebase"
	RepositoryBolt     = "bolt"
)

const (
	DefaultDatabasePath  = "sc.db"
	DefaultListenAddress = ":3000"
	DefaultLogLevel      = "info"
)

var ConfigError = errors.New("invalid configuration")

var UnknownRepositoryError = fmt.Errorf("%w: unknown repository (%s, %s, %s)", ConfigError, RepositorySqlite, RepositoryFirebase, RepositoryBolt)

type Config struct {
	Repository    string
	DatabasePath  string
	FirebaseName  string
	FirebaseUrl   string
	ListenAddress string
	LogLevel      string
}

func LoadConfigFromEnv() Config {
	return Config{
		Repository:    os.Getenv("SC_REPOSITORY"),
		DatabasePath:  getenvDefault("DATABASE_FILEPATH", DefaultDatabasePath),
		FirebaseName:  os.Getenv("FBNAME"),
		FirebaseUrl:   os.Getenv("FIREBASE_URL"),
		ListenAddress: getenvDefault("LISTEN_ADDRESS", DefaultListenAddress),
		LogLevel:      getenvDefault("LOG_LEVEL", DefaultLogLevel),
	}
}

func (c Config) Validate() error {
	switch c.Repository {
	case RepositorySqlite, RepositoryBolt:
		if c.DatabasePath == "" {
			return fmt.Errorf("%w: database path is required for %s", ConfigError, c.Repository)
		}
	case RepositoryFirebase:
		if c.FirebaseName == "" && c.FirebaseUrl == "" {
			return fmt.Errorf("%w: FBNAME is required for %s", ConfigError, c.Repository)
		}
	default:
		return fmt.Errorf("`%s`: %w", c.Repository, UnknownRepositoryError)
	}

	if _, err := c.AlogLevel(); err != nil {
		return err
	}

	return nil
}

// FirebaseBaseUrl prefers the explicit URL (emulator, tests) over the one built from the database name.
func (c Config) FirebaseBaseUrl() string {
	if c.FirebaseUrl != "" {
		return strings.TrimSuffix(c.FirebaseUrl, "/")
	}

	return FirebaseBaseUrl(c.FirebaseName)
}

func (c Config) AlogLevel() (alog.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return alog.LevelDebug, nil
	case "", "info":
		return alog.LevelInfo, nil
	case "warning", "warn":
		return alog.LevelWarning, nil
	case "error":
		return alog.LevelError, nil
	}

	return alog.LevelInfo, fmt.Errorf("%w: unknown log level `%s`", ConfigError, c.LogLevel)
}

func getenvDefault(key string, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}
