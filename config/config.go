package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	chefUC "github.com/Nomet5/cake-app-sub003/internal/chef/usecase"
	"github.com/Nomet5/cake-app-sub003/internal/product/derive"
	"github.com/Nomet5/cake-app-sub003/pkg/broker"
	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/database"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	AppEnv          string
	GRPCPort        string
	HTTPPort        string
	ReadTimeout     int
	WriteTimeout    int
	RequestTimeout  int
	ShutdownTimeout int
	AllowedOrigins  []string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

// CatalogConfig holds the listing defaults and display placeholders. It can
// be overridden from a YAML file named by CATALOG_CONFIG_FILE.
type CatalogConfig struct {
	DefaultLimit        int     `yaml:"default_limit"`
	DefaultRating       float64 `yaml:"default_rating"`
	PopularThreshold    int     `yaml:"popular_threshold"`
	NewWindowDays       int     `yaml:"new_window_days"`
	DescriptionFallback string  `yaml:"description_fallback"`
	CategoryFallback    string  `yaml:"category_fallback"`
	ChefFallback        string  `yaml:"chef_fallback"`
	DeliveryTime        string  `yaml:"delivery_time"`
	Distance            string  `yaml:"distance"`
	CacheTTLSeconds     int     `yaml:"cache_ttl_seconds"`
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			GRPCPort:        getEnv("GRPC_PORT", ":8082"),
			HTTPPort:        getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvInt("HTTP_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvInt("HTTP_WRITE_TIMEOUT", 15),
			RequestTimeout:  getEnvInt("HTTP_REQUEST_TIMEOUT", 30),
			ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT", 30),
			AllowedOrigins:  getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", database.DriverPostgres),
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "cakeapp"),
			Password:        getEnv("POSTGRES_PASSWORD", "cakeapp"),
			DBName:          getEnv("POSTGRES_DB", "cakeapp"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "cakeapp.db"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_CATALOG", "catalog.events"),
			GroupID: getEnv("KAFKA_GROUP_CATALOG", "catalog-cache"),
		},
		Catalog: CatalogConfig{
			DefaultLimit:        getEnvInt("CATALOG_DEFAULT_LIMIT", 50),
			DefaultRating:       getEnvFloat("CATALOG_DEFAULT_RATING", 4.5),
			PopularThreshold:    getEnvInt("CATALOG_POPULAR_THRESHOLD", 5),
			NewWindowDays:       getEnvInt("CATALOG_NEW_WINDOW_DAYS", 7),
			DescriptionFallback: getEnv("CATALOG_DESCRIPTION_FALLBACK", "Описание отсутствует"),
			CategoryFallback:    getEnv("CATALOG_CATEGORY_FALLBACK", "Без категории"),
			ChefFallback:        getEnv("CATALOG_CHEF_FALLBACK", "Домашний пекарь"),
			DeliveryTime:        getEnv("CATALOG_DELIVERY_TIME", "30-45 мин"),
			Distance:            getEnv("CATALOG_DISTANCE", "1.5 км"),
			CacheTTLSeconds:     getEnvInt("CATALOG_CACHE_TTL", 60),
		},
	}
}

// Load reads the environment, applies the optional catalog file and
// validates the result.
func Load() (*Config, error) {
	cfg := LoadEnv()

	if path := getEnv("CATALOG_CONFIG_FILE", ""); path != "" {
		if err := cfg.Catalog.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFile overlays the fields present in a YAML file; absent keys keep
// their current values.
func (c *CatalogConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse catalog config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case database.DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("POSTGRES_HOST and POSTGRES_DB are required"))
		}
	case database.DriverSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Logger.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when REDIS_ENABLED"))
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		errs = append(errs, errors.New("KAFKA_BROKERS and KAFKA_TOPIC_CATALOG are required when KAFKA_ENABLED"))
	}

	if c.Catalog.DefaultLimit <= 0 {
		errs = append(errs, errors.New("catalog default_limit must be positive"))
	}
	if c.Catalog.DefaultRating < 1 || c.Catalog.DefaultRating > 5 {
		errs = append(errs, errors.New("catalog default_rating must be between 1 and 5"))
	}
	if c.Catalog.NewWindowDays < 0 || c.Catalog.PopularThreshold < 0 {
		errs = append(errs, errors.New("catalog thresholds must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *Config) ZapLogger() *logger.ZapLoggerConfig {
	logConfig := &logger.ZapLoggerConfig{
		Encoding:          c.Logger.Encoding,
		Level:             c.Logger.Level,
		DisableCaller:     c.Logger.DisableCaller,
		DisableStacktrace: c.Logger.DisableStacktrace,
	}
	if c.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}
	return logConfig
}

func (c *Config) DB() *database.Config {
	return &database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		User:            c.Database.User,
		Password:        c.Database.Password,
		DBName:          c.Database.DBName,
		SSLMode:         c.Database.SSLMode,
		SQLitePath:      c.Database.SQLitePath,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(c.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(c.Database.ConnMaxIdleTime) * time.Second,
	}
}

func (c *Config) Cache() *cache.Config {
	return &cache.Config{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB}
}

func (c *Config) Broker() *broker.Config {
	return &broker.Config{Brokers: c.Kafka.Brokers, Topic: c.Kafka.Topic, GroupID: c.Kafka.GroupID}
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLSeconds) * time.Second
}

func (c *Config) DeriveOptions() derive.Options {
	return derive.Options{
		DefaultRating:       c.Catalog.DefaultRating,
		PopularThreshold:    c.Catalog.PopularThreshold,
		NewWindow:           time.Duration(c.Catalog.NewWindowDays) * 24 * time.Hour,
		DescriptionFallback: c.Catalog.DescriptionFallback,
		CategoryFallback:    c.Catalog.CategoryFallback,
		ChefFallback:        c.Catalog.ChefFallback,
	}
}

func (c *Config) ChefOptions() chefUC.Options {
	return chefUC.Options{
		DefaultLimit:  c.Catalog.DefaultLimit,
		DefaultRating: c.Catalog.DefaultRating,
		DeliveryTime:  c.Catalog.DeliveryTime,
		Distance:      c.Catalog.Distance,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
