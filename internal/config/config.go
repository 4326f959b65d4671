package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file when one exists in
// the current or parent directory.
func LoadEnv(logger logging.Logger) {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return
		}
		logger.Debug("Loaded environment variables",
			logging.Field{Key: logging.FieldFile, Value: envFile})
	})
}

// NewLogger builds the application logger from the configuration.
func NewLogger(c *Config) logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}

// StorePath resolves the sqlite store path against the data directory.
func (c *Config) StorePath() string {
	if filepath.IsAbs(c.Data.StoreFile) {
		return c.Data.StoreFile
	}
	return filepath.Join(c.Data.Directory, c.Data.StoreFile)
}
