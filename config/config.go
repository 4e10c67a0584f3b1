package config

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr        string
	DemandHTTPAddr  string
	GatewayHTTPAddr string
	OrderSvcURL     string
	DemandSvcURL    string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisAddr string

	KafkaBroker string
	OrdersTopic string

	PhoneRegion     string
	MediaURL        string
	CatalogCacheTTL time.Duration
	LogLevel        slog.Level
}

// Load reads the process environment, preloading a .env file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8081"),
		DemandHTTPAddr:  getEnv("DEMAND_HTTP_ADDR", ":8083"),
		GatewayHTTPAddr: getEnv("GATEWAY_HTTP_ADDR", ":8080"),
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		DemandSvcURL:    getEnv("DEMAND_SVC_URL", "http://localhost:8083"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "foodcart"),
		DBUser:          getEnv("DB_USER", "foodcart"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		RedisAddr:       getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		KafkaBroker:     getEnv("KAFKA_BROKER", "localhost:9092"),
		OrdersTopic:     getEnv("ORDERS_TOPIC", "orders"),
		PhoneRegion:     strings.ToUpper(getEnv("PHONE_REGION", "RU")),
		MediaURL:        getEnv("MEDIA_URL", "/media/"),
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	ttl, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "1m"))
	if err != nil {
		slog.Warn("invalid CATALOG_CACHE_TTL, falling back to default", "value", os.Getenv("CATALOG_CACHE_TTL"))
		ttl = time.Minute
	}
	cfg.CatalogCacheTTL = ttl

	return cfg
}

// InitLogger installs a JSON slog logger as the process default.
func InitLogger(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		fatal("failed to connect to database", err)
	}

	if err = db.Ping(); err != nil {
		fatal("failed to ping database", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		fatal("failed to connect to redis", err)
	}

	return client
}

func NewKafkaReader(cfg *Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrdersTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
