// Package config holds the resolved command-line configuration of the CT
// file generator.
package config

import (
	"fmt"
	"os"
)

// EnvDatabasePath is the environment fallback for the device database path,
// honored when the --db flag is not given (a .env file is loaded at
// startup).
const EnvDatabasePath = "AIECTGEN_DB"

// Config holds the parsed command-line configuration.
type Config struct {
	// Root is the directory searched recursively for runtime control
	// programs.
	Root string
	// DatabasePath is the device database YAML file.
	DatabasePath string
	// DeviceID selects the device inside the database.
	DeviceID uint64
	// Verbose enables debug-level logging.
	Verbose bool
}

// New validates flag values and returns a Config. An empty database path
// falls back to the AIECTGEN_DB environment variable.
func New(root, databasePath string, deviceID uint64, verbose bool) (*Config, error) {
	if databasePath == "" {
		databasePath = os.Getenv(EnvDatabasePath)
	}
	if databasePath == "" {
		return nil, fmt.Errorf("device database path required (--db flag or %s)", EnvDatabasePath)
	}

	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root %s is not a directory", root)
	}

	return &Config{
		Root:         root,
		DatabasePath: databasePath,
		DeviceID:     deviceID,
		Verbose:      verbose,
	}, nil
}
