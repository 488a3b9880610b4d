package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Пул соединений PostgreSQL (0 - значения pgxpool по умолчанию)
	DBMaxConns int32 `env:"DB_MAX_CONNS"`
	DBMinConns int32 `env:"DB_MIN_CONNS"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// JWT Config
	JWTSecret   string        `env:"JWT_SECRET"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"etraffic"`
	JWTAudience string        `env:"JWT_AUDIENCE" envDefault:"etraffic-api"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"168h"`

	// GPS validation
	GPSMaxDistanceMeters float64 `env:"GPS_MAX_DISTANCE_METERS" envDefault:"500"`
	GPSValidationEnabled bool    `env:"GPS_VALIDATION_ENABLED" envDefault:"true"`

	// Text similarity
	SimilarityThreshold        float64 `env:"SIMILARITY_THRESHOLD" envDefault:"0.7"`
	SimilarityCredibilityBoost float64 `env:"SIMILARITY_CREDIBILITY_BOOST" envDefault:"0.2"`
	NearbyRadiusMeters         float64 `env:"NEARBY_RADIUS_METERS" envDefault:"500"`

	// Coins
	CoinsPerReport         int     `env:"COINS_PER_REPORT" envDefault:"10"`
	CoinsPerVerifiedReport int     `env:"COINS_PER_VERIFIED_REPORT" envDefault:"25"`
	MinCoinsForConversion  int     `env:"MIN_COINS_FOR_CONVERSION" envDefault:"100"`
	CoinToBirrRate         float64 `env:"COIN_TO_BIRR_RATE" envDefault:"1"`

	// Rate limiting для маршрутов подачи отчётов
	RateLimitWindow      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// NATS (пусто - вещание только внутри процесса)
	NATSURL           string        `env:"NATS_URL"`
	NATSMaxReconnects int           `env:"NATS_MAX_RECONNECTS" envDefault:"10"`
	NATSReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" envDefault:"2s"`

	// WebSocket
	WSBroadcastInterval time.Duration `env:"WS_BROADCAST_INTERVAL" envDefault:"30s"`
	WSPushRadiusMeters  float64       `env:"WS_PUSH_RADIUS_METERS" envDefault:"5000"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                os.Getenv("DATABASE_URL"),
		HTTPPort:                   getEnv("HTTP_PORT", "8080"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		LogFormat:                  getEnv("LOG_FORMAT", "json"),
		DBMaxConns:                 int32(getEnvAsInt("DB_MAX_CONNS", 0)),
		DBMinConns:                 int32(getEnvAsInt("DB_MIN_CONNS", 0)),
		RedisAddr:                  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                  os.Getenv("REDIS_PASSWORD"),
		RedisDB:                    getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:              getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURL:                 os.Getenv("WEBHOOK_URL"),
		WebhookSecret:              os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:             getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:          getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:           getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes:     getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		JWTSecret:                  os.Getenv("JWT_SECRET"),
		JWTIssuer:                  getEnv("JWT_ISSUER", "etraffic"),
		JWTAudience:                getEnv("JWT_AUDIENCE", "etraffic-api"),
		JWTTTL:                     getEnvAsDuration("JWT_TTL", 7*24*time.Hour),
		GPSMaxDistanceMeters:       getEnvAsFloat("GPS_MAX_DISTANCE_METERS", 500),
		GPSValidationEnabled:       getEnvAsBool("GPS_VALIDATION_ENABLED", true),
		SimilarityThreshold:        getEnvAsFloat("SIMILARITY_THRESHOLD", 0.7),
		SimilarityCredibilityBoost: getEnvAsFloat("SIMILARITY_CREDIBILITY_BOOST", 0.2),
		NearbyRadiusMeters:         getEnvAsFloat("NEARBY_RADIUS_METERS", 500),
		CoinsPerReport:             getEnvAsInt("COINS_PER_REPORT", 10),
		CoinsPerVerifiedReport:     getEnvAsInt("COINS_PER_VERIFIED_REPORT", 25),
		MinCoinsForConversion:      getEnvAsInt("MIN_COINS_FOR_CONVERSION", 100),
		CoinToBirrRate:             getEnvAsFloat("COIN_TO_BIRR_RATE", 1),
		RateLimitWindow:            getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMaxRequests:       getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		FrontendURL:                getEnv("FRONTEND_URL", "http://localhost:3000"),
		NATSURL:                    os.Getenv("NATS_URL"),
		NATSMaxReconnects:          getEnvAsInt("NATS_MAX_RECONNECTS", 10),
		NATSReconnectWait:          getEnvAsDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		WSBroadcastInterval:        getEnvAsDuration("WS_BROADCAST_INTERVAL", 30*time.Second),
		WSPushRadiusMeters:         getEnvAsFloat("WS_PUSH_RADIUS_METERS", 5000),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool понимает всё, что понимает strconv.ParseBool ("true", "1", "false", ...)
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
