package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	RunMigrations   bool          `mapstructure:"RUN_MIGRATIONS"`
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	JWTTTL          time.Duration `mapstructure:"JWT_TTL"`
	BcryptCost      int           `mapstructure:"BCRYPT_COST"`
	AMQPURL         string        `mapstructure:"AMQP_URL"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	StoreCurrency   string        `mapstructure:"STORE_CURRENCY"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// parsed from the raw values above
	Currency currency.Unit `mapstructure:"-"`
	Level    zerolog.Level `mapstructure:"-"`
}

var defaults = map[string]any{
	"HTTP_ADDR":        ":8080",
	"DATABASE_URL":     "",
	"RUN_MIGRATIONS":   true,
	"JWT_SECRET":       "",
	"JWT_TTL":          "1h",
	"BCRYPT_COST":      10,
	"AMQP_URL":         "",
	"LOG_LEVEL":        "info",
	"STORE_CURRENCY":   "USD",
	"SHUTDOWN_TIMEOUT": "10s",
}

// Load reads the environment, after loading envFiles (".env" when none given) into it.
// Missing env files are ignored, variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", file, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("v.Unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}

	unit, err := currency.ParseISO(c.StoreCurrency)
	if err != nil {
		return fmt.Errorf("STORE_CURRENCY[%s]: %w", c.StoreCurrency, err)
	}
	c.Currency = unit

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL[%s]: %w", c.LogLevel, err)
	}
	c.Level = level

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}

	return nil
}
