package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Approval ApprovalConfig
	Clients  ClientsConfig
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8083)
}

type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
}

type KafkaConfig struct {
	Brokers []string // Список брокеров Kafka (формат: host:port)
	Topic   string   // Топик для событий отзывов
}

type JWTConfig struct {
	Secret string // Секретный ключ для проверки JWT токенов (должен совпадать с Auth Service)
}

// ApprovalConfig - неизменяемая конфигурация порога одобрения.
// Загружается один раз при старте и внедряется в сервис
type ApprovalConfig struct {
	MinCount int // Сколько одобрений нужно, чтобы отзыв считался одобренным (>= 1)
}

type ClientsConfig struct {
	AuthServiceURL string // Базовый URL Auth Service
	PosServiceURL  string // Базовый URL POS Service
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8083"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "reviews_service"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "review_events"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		},
		Approval: ApprovalConfig{
			MinCount: getEnvInt("APPROVAL_MIN_COUNT", 3),
		},
		Clients: ClientsConfig{
			AuthServiceURL: getEnv("AUTH_SERVICE_URL", "http://localhost:8081"),
			PosServiceURL:  getEnv("POS_SERVICE_URL", "http://localhost:8082"),
		},
	}, nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 1 {
			return parsed
		}
	}
	return defaultValue
}
