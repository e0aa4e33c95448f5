package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/relief-board/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StoreKey     string
	Lifecycle    string
	EnvFile      string
}

// envConfig is the environment layer; flags take precedence over it.
type envConfig struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"file:relief-board.db"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	StoreKey     string `env:"STORE_KEY" envDefault:"drrms_resources"`
	Lifecycle    string `env:"LIFECYCLE" envDefault:"basic"`
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("relief-board", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.StringVar(&cfg.StoreKey, "key", "", "Storage key holding the resource list")
	flags.StringVar(&cfg.Lifecycle, "lifecycle", "", "Resource lifecycle (basic or extended)")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables already set in the process
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = ec.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = ec.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = ec.DatabaseType
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = ec.StoreKey
	}
	if cfg.Lifecycle == "" {
		cfg.Lifecycle = ec.Lifecycle
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("invalid port")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if cfg.StoreKey == "" {
		return Config{}, errors.New("store key must not be empty")
	}
	if cfg.Lifecycle != models.LifecycleBasic && cfg.Lifecycle != models.LifecycleExtended {
		return Config{}, fmt.Errorf("unknown lifecycle %q", cfg.Lifecycle)
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
