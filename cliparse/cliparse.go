package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Defaults for session ID generation. The alphabet is base62 so IDs are
// URL-safe and easy to read aloud.
const (
	DefaultIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultIDLength   = 8
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	SessionIDAlphabet string
	SessionIDLength   int
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pointdeck", flag.ContinueOnError)

	// Network and database config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Session ID generation
	fs.StringVar(&cfg.SessionIDAlphabet, "id-chars", "", "Character set for generated session IDs")
	fs.IntVar(&cfg.SessionIDLength, "id-len", 0, "Length of generated session IDs")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3419 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.SessionIDAlphabet == "" {
		cfg.SessionIDAlphabet = os.Getenv("SESSION_ID_CHARS")
		if cfg.SessionIDAlphabet == "" {
			cfg.SessionIDAlphabet = DefaultIDAlphabet
		}
	}

	if cfg.SessionIDLength == 0 {
		if lenStr := os.Getenv("SESSION_ID_LENGTH"); lenStr != "" {
			n, err := strconv.Atoi(lenStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_ID_LENGTH env variable")
			}
			cfg.SessionIDLength = n
		} else {
			cfg.SessionIDLength = DefaultIDLength
		}
	}
	if cfg.SessionIDLength < 4 {
		return Config{}, errors.New("session ID length must be at least 4")
	}

	return cfg, nil
}
