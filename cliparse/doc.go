// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default: file:relief-board.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StoreKey: Key holding the serialized resource list (default: drrms_resources)
  - Lifecycle: basic or extended (default: basic)
  - EnvFile: dotenv file read before the environment (default: .env)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-key        Storage key
	-lifecycle  Resource lifecycle
	-env        Dotenv file ("" disables)

# Environment Variables

Flags fall back to environment variables, decoded with caarlos0/env:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	STORE_KEY     → -key
	LIFECYCLE     → -lifecycle

CLI flags take precedence over environment variables, and the process
environment takes precedence over the dotenv file.

# Lifecycle

The basic lifecycle is Available → In Progress. The extended lifecycle adds
In Progress → Fulfilled.
*/
package cliparse
