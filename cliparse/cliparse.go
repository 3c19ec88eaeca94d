package cliparse

import (
	"flag"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/db"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ShareBaseURL  string
	RetryAttempts int
	EnvFile       string
}

// ParseFlags validates flags and falls back to the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.ShareBaseURL, "share-url", "", "Base URL of the web client, used for share links")
	fs.IntVar(&cfg.RetryAttempts, "retries", 0, "Attempts per vote on transient database errors")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Environment file to load (ignored if missing)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "failed to load %s", cfg.EnvFile)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 2022 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.Newf("port %d out of range", cfg.Port)
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
			cfg.DatabaseType = db.TypePostgres
		}
	}
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, errors.Newf("unknown database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = os.Getenv("SHARE_BASE_URL")
		if cfg.ShareBaseURL == "" {
			cfg.ShareBaseURL = "http://localhost:5173"
		}
	}

	if cfg.RetryAttempts == 0 {
		if retries := os.Getenv("VOTE_RETRY_ATTEMPTS"); retries != "" {
			n, err := strconv.Atoi(retries)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_RETRY_ATTEMPTS env variable")
			}
			cfg.RetryAttempts = n
		} else {
			cfg.RetryAttempts = 3
		}
	}
	if cfg.RetryAttempts < 1 {
		return Config{}, errors.New("retry attempts must be at least 1")
	}

	return cfg, nil
}
