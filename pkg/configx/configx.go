// Package configx loads service configuration from the environment, after
// overlaying an optional dotenv file for local development.
package configx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when ENV_FILE_PATH is unset.
const DefaultEnvFile = ".env"

// Load reads the dotenv file named by ENV_FILE_PATH (or DefaultEnvFile) into
// the process environment and then parses target with caarlos0/env tags.
// Variables already set in the environment win over the file. A missing
// file is not an error.
func Load(target any) error {
	path := os.Getenv("ENV_FILE_PATH")
	if path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
