// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 2022)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres; sqlite is for local development)
  - ShareBaseURL: Web client base URL for list share links
  - RetryAttempts: Attempts per vote when the database reports a transient failure (default: 3)
  - EnvFile: .env file loaded before reading the environment

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-share-url  Share link base URL
	-retries    Vote retry attempts
	-env        Environment file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	SHARE_BASE_URL      → -share-url
	VOTE_RETRY_ATTEMPTS → -retries

CLI flags take precedence over environment variables, and variables already
set in the process environment take precedence over the .env file. A missing
.env file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is not provided
  - PORT or VOTE_RETRY_ATTEMPTS is not a number
  - the port is outside 1-65535
  - the database type is not sqlite or postgres
  - retry attempts is below 1
*/
package cliparse
