package main

import (
	"github.com/stretchr/testify/assert"
	"go.alis.build/alog"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SC_REPOSITORY", "DATABASE_FILEPATH", "FBNAME", "FIREBASE_URL", "LISTEN_ADDRESS", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}

		config := LoadConfigFromEnv()

		assert.Equal(t, Config{
			DatabasePath:  DefaultDatabasePath,
			ListenAddress: DefaultListenAddress,
			LogLevel:      DefaultLogLevel,
		}, config)
	})

	t.Run("from_env", func(t *testing.T) {
		t.Setenv("SC_REPOSITORY", RepositoryFirebase)
		t.Setenv("DATABASE_FILEPATH", "/tmp/cells.db")
		t.Setenv("FBNAME", "sc-cells")
		t.Setenv("FIREBASE_URL", "http://localhost:9000/")
		t.Setenv("LISTEN_ADDRESS", ":8080")
		t.Setenv("LOG_LEVEL", "debug")

		config := LoadConfigFromEnv()

		assert.Equal(t, Config{
			Repository:    RepositoryFirebase,
			DatabasePath:  "/tmp/cells.db",
			FirebaseName:  "sc-cells",
			FirebaseUrl:   "http://localhost:9000/",
			ListenAddress: ":8080",
			LogLevel:      "debug",
		}, config)
		assert.Equal(t, "http://localhost:9000", config.FirebaseBaseUrl())
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := []Config{
		{Repository: RepositorySqlite, DatabasePath: "sc.db"},
		{Repository: RepositoryBolt, DatabasePath: "sc.bolt", LogLevel: "warning"},
		{Repository: RepositoryFirebase, FirebaseName: "sc-cells"},
		{Repository: RepositoryFirebase, FirebaseUrl: "http://localhost:9000"},
	}
	for _, config := range valid {
		assert.NoError(t, config.Validate(), config.Repository)
	}

	t.Run("unknown_repository", func(t *testing.T) {
		err := Config{Repository: "mysql"}.Validate()

		assert.ErrorIs(t, err, UnknownRepositoryError)
		assert.ErrorIs(t, err, ConfigError)
	})

	t.Run("missing_repository", func(t *testing.T) {
		assert.ErrorIs(t, Config{}.Validate(), UnknownRepositoryError)
	})

	t.Run("missing_database_path", func(t *testing.T) {
		assert.ErrorIs(t, Config{Repository: RepositorySqlite}.Validate(), ConfigError)
	})

	t.Run("missing_firebase_name", func(t *testing.T) {
		assert.ErrorIs(t, Config{Repository: RepositoryFirebase}.Validate(), ConfigError)
	})

	t.Run("unknown_log_level", func(t *testing.T) {
		err := Config{Repository: RepositorySqlite, DatabasePath: "sc.db", LogLevel: "verbose"}.Validate()

		assert.ErrorIs(t, err, ConfigError)
	})
}

func TestConfig_AlogLevel(t *testing.T) {
	testCases := map[string]alog.LogLevel{
		"":        alog.LevelInfo,
		"info":    alog.LevelInfo,
		"DEBUG":   alog.LevelDebug,
		"warning": alog.LevelWarning,
		"warn":    alog.LevelWarning,
		"error":   alog.LevelError,
	}

	for logLevel, expected := range testCases {
		actual, err := Config{LogLevel: logLevel}.AlogLevel()

		assert.NoError(t, err)
		assert.Equal(t, expected, actual, logLevel)
	}
}
