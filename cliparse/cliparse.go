package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend types
const (
	BackendREST     = "rest"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

const (
	DefaultPort      = 3318
	DefaultTextLimit = 300
)

type Config struct {
	Port        int
	BackendType string

	// REST backend
	SupabaseURL   string
	SupabaseKey   string
	SupabaseToken string

	// SQL backends
	DatabaseURL string

	RedisURL    string
	BaseURL     string
	TextLimit   int
	DisplayTZ   string
	AtomicVotes bool
}

// Location resolves DisplayTZ, falling back to UTC
func (c Config) Location() *time.Location {
	if c.DisplayTZ == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("factify", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BackendType, "t", "", "Backend type (rest, sqlite or postgres)")
	fs.StringVar(&cfg.SupabaseURL, "u", "", "REST backend base URL")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite/postgres backends")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for persisted preferences")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL used in share links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SupabaseKey, "api-key", "", "Backend API key (prefer env)")
	fs.StringVar(&cfg.SupabaseToken, "token", "", "Backend bearer token (prefer env)")

	// Behaviour
	fs.IntVar(&cfg.TextLimit, "text-limit", 0, "Maximum fact length in characters")
	fs.StringVar(&cfg.DisplayTZ, "tz", "", "Time zone for displayed dates")
	fs.BoolVar(&cfg.AtomicVotes, "atomic-votes", false, "Use atomic increments when the backend supports them")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.BackendType == "" {
		cfg.BackendType = os.Getenv("BACKEND_TYPE")
		if cfg.BackendType == "" {
			cfg.BackendType = BackendREST
		}
	}
	cfg.BackendType = strings.ToLower(cfg.BackendType)

	fallback(&cfg.SupabaseURL, "SUPABASE_URL")
	fallback(&cfg.SupabaseKey, "SUPABASE_KEY")
	fallback(&cfg.SupabaseToken, "SUPABASE_TOKEN")
	fallback(&cfg.DatabaseURL, "DATABASE_URL")
	fallback(&cfg.RedisURL, "REDIS_URL")
	fallback(&cfg.BaseURL, "BASE_URL")
	fallback(&cfg.DisplayTZ, "DISPLAY_TZ")

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.TextLimit == 0 {
		if s := os.Getenv("TEXT_LIMIT"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid TEXT_LIMIT env variable")
			}
			cfg.TextLimit = n
		} else {
			cfg.TextLimit = DefaultTextLimit
		}
	}
	if cfg.TextLimit < 1 {
		return Config{}, errors.New("text limit must be positive")
	}

	if !set["atomic-votes"] {
		if s := os.Getenv("ATOMIC_VOTES"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid ATOMIC_VOTES env variable")
			}
			cfg.AtomicVotes = v
		}
	}

	if cfg.DisplayTZ == "" {
		cfg.DisplayTZ = "UTC"
	}
	if _, err := time.LoadLocation(cfg.DisplayTZ); err != nil {
		return Config{}, fmt.Errorf("invalid time zone %q: %w", cfg.DisplayTZ, err)
	}

	// Backend-specific requirements
	switch cfg.BackendType {
	case BackendREST:
		if cfg.SupabaseURL == "" {
			return Config{}, errors.New("backend URL required (use -u or SUPABASE_URL env)")
		}
		if cfg.SupabaseKey == "" {
			return Config{}, errors.New("SUPABASE_KEY required")
		}
	case BackendSQLite, BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown backend type %q", cfg.BackendType)
	}

	return cfg, nil
}

func fallback(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}
