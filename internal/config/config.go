// Package config carga la configuración una sola vez al arrancar:
// defaults -> .env (opcional) -> env -> flags.
// El Config resultante se pasa explícito y no se muta después.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string

	// Servidor HTTP
	HTTPAddr       string
	Workers        int
	RequestTimeout time.Duration
	AllowedOrigins []string

	// Logs; path vacío => stdout/stderr.
	LogLevel      string
	LogFormat     string
	AccessLogPath string
	ErrorLogPath  string

	// Storage; DSN vacío => in-memory.
	DatabaseDSN    string
	MigrateOnStart bool

	// Credenciales
	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration
	BcryptCost   int
}

// LoadDefaults setea defaults de desarrollo. JWTSecret queda vacío: Validate
// no deja arrancar sin secret.
func (c *Config) LoadDefaults() {
	c.AppName = "vet-clinic"
	c.HTTPAddr = ":8000"
	c.Workers = 64
	c.RequestTimeout = 30 * time.Second
	c.AllowedOrigins = []string{"http://localhost:3000"}
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MigrateOnStart = true
	c.JWTAlgorithm = "HS256"
	c.TokenTTL = 30 * time.Minute
	c.BcryptCost = 10
}

// Load arma el Config desde defaults, .env, env y args (normalmente os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("config: JWT_SECRET is not set")
	}
	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("config: unsupported JWT_ALGORITHM %q", c.JWTAlgorithm)
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: JWT_TTL must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("config: WORKERS must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	str("APP_NAME", &c.AppName)
	str("HTTP_ADDR", &c.HTTPAddr)
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		c.HTTPAddr = ":" + strings.TrimSpace(v)
	}
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("ACCESS_LOG_PATH", &c.AccessLogPath)
	str("ERROR_LOG_PATH", &c.ErrorLogPath)
	str("DB_DSN", &c.DatabaseDSN)
	str("JWT_SECRET", &c.JWTSecret)
	str("JWT_ALGORITHM", &c.JWTAlgorithm)

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = splitList(v)
	}

	var err error
	if v, ok := lookup("WORKERS"); ok {
		if c.Workers, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: WORKERS: %w", err)
		}
	}
	if v, ok := lookup("BCRYPT_COST"); ok {
		if c.BcryptCost, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: BCRYPT_COST: %w", err)
		}
	}
	if v, ok := lookup("DB_MIGRATE"); ok {
		if c.MigrateOnStart, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: DB_MIGRATE: %w", err)
		}
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok {
		if c.RequestTimeout, err = time.ParseDuration(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: REQUEST_TIMEOUT: %w", err)
		}
	}
	if v, ok := lookup("JWT_TTL"); ok {
		if c.TokenTTL, err = time.ParseDuration(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("config: JWT_TTL: %w", err)
		}
	}
	return nil
}

// parseFlags aplica los flags cortos:
//
//	-a  dirección        -d  DSN de la base
//	-s  secret JWT       -t  vida del token (p.ej. 30m)
//	-w  máx. requests en vuelo
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("vet-clinic", flag.ContinueOnError)

	fs.StringVar(&c.HTTPAddr, "a", c.HTTPAddr, "address and port to run server")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "database DSN")
	fs.StringVar(&c.JWTSecret, "s", c.JWTSecret, "JWT signing secret")
	fs.DurationVar(&c.TokenTTL, "t", c.TokenTTL, "access token lifetime")
	fs.IntVar(&c.Workers, "w", c.Workers, "max in-flight requests")

	return fs.Parse(args)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
