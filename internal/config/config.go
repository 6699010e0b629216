package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultDispatchInterval = 30 * time.Second
	defaultDispatchWorkers  = 5
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTAdminSecret string `env:"JWT_ADMIN_SECRET"`

	// Секреты шлюзов. Шлюз без секрета не регистрируется, его колбэки получают 404.
	TripayPrivateKey   string `env:"TRIPAY_PRIVATE_KEY"`
	DuitkuMerchantCode string `env:"DUITKU_MERCHANT_CODE"`
	DuitkuAPIKey       string `env:"DUITKU_API_KEY"`
	MidtransServerKey  string `env:"MIDTRANS_SERVER_KEY"`

	DispatchInterval time.Duration `env:"DISPATCH_INTERVAL"`
	DispatchWorkers  uint          `env:"DISPATCH_WORKERS"`
}

// LoadConfig собирает конфиг из .env (если есть), переменных окружения и флагов. Переменные окружения
// приоритетнее флагов.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:], ".env")
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string, dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, err
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTAdminSecret == "" {
		return nil, errors.New("admin jwt secret is not set")
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("ppob", flag.ContinueOnError)
	flagSet.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flagSet.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	flagSet.DurationVar(&flagConfig.DispatchInterval, "i", defaultDispatchInterval, "Fulfillment redispatch interval")
	flagSet.UintVar(&flagConfig.DispatchWorkers, "w", defaultDispatchWorkers, "Fulfillment redispatch workers")

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisAddr:          defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword:      envConfig.RedisPassword,
		JWTAdminSecret:     envConfig.JWTAdminSecret,
		TripayPrivateKey:   envConfig.TripayPrivateKey,
		DuitkuMerchantCode: envConfig.DuitkuMerchantCode,
		DuitkuAPIKey:       envConfig.DuitkuAPIKey,
		MidtransServerKey:  envConfig.MidtransServerKey,
		DispatchInterval:   defaultIfZero(envConfig.DispatchInterval, flagsConfig.DispatchInterval),
		DispatchWorkers:    defaultIfZero(envConfig.DispatchWorkers, flagsConfig.DispatchWorkers),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
