package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Khalti   KhaltiConfig   `yaml:"khalti"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	SSLMode       string `yaml:"ssl_mode"`
	MigrationsDir string `yaml:"migrations_dir"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type KhaltiConfig struct {
	PublicKey      string   `yaml:"public_key"`
	SecretKey      string   `yaml:"secret_key"`
	BaseURL        string   `yaml:"base_url"`
	Channels       []string `yaml:"channels"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TTLHours  int    `yaml:"ttl_hours"`
}

type BookingConfig struct {
	PackagesCacheTTL      int `yaml:"packages_cache_ttl_seconds"`
	SubmitTimeoutSeconds  int `yaml:"submit_timeout_seconds"`
	PaymentTimeoutSeconds int `yaml:"payment_timeout_seconds"`
}

type WorkerConfig struct {
	StaleSweepMinutes int `yaml:"stale_sweep_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
