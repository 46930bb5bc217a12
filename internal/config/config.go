package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
		Port int    `yaml:"port" env:"SERVER_PORT" env-default:"5000"`
		Env  string `yaml:"env" env:"SERVER_ENV" env-default:"development"`
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
		DSN          string `yaml:"url" env:"DATABASE_URL" env-default:"fitness_revolution.db"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
		MaxIdleConns int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret" env:"JWT_SECRET_KEY" env-default:"jwt-secret-key-fitness-revolution"`
		TTLHours int    `yaml:"ttl_hours" env:"JWT_TTL_HOURS" env-default:"168"`
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	} `yaml:"cors"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT" env-default:"587"`
		SMTPUser     string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"SMTP_FROM_EMAIL" env-default:"no-reply@fitnessrevolution.in"`
		FromName     string `yaml:"from_name" env:"SMTP_FROM_NAME" env-default:"The Fitness Revolution"`
		AdminEmail   string `yaml:"admin_email" env:"CONTACT_ADMIN_EMAIL"`
	} `yaml:"email"`

	Contact struct {
		RateLimit         int `yaml:"rate_limit" env:"CONTACT_RATE_LIMIT" env-default:"5"`
		RateWindowMinutes int `yaml:"rate_window_minutes" env:"CONTACT_RATE_WINDOW_MINUTES" env-default:"10"`
		CacheSize         int `yaml:"cache_size" env:"CONTACT_CACHE_SIZE" env-default:"4096"`
	} `yaml:"contact"`

	Workers struct {
		MembershipExpiryIntervalMinutes int `yaml:"membership_expiry_interval_minutes" env:"MEMBERSHIP_EXPIRY_INTERVAL_MINUTES" env-default:"60"`
	} `yaml:"workers"`

	// Первый админ создается при старте, если оба поля заданы
	Admin struct {
		Email    string `yaml:"email" env:"FIRST_ADMIN_EMAIL"`
		Password string `yaml:"password" env:"FIRST_ADMIN_PASSWORD"`
	} `yaml:"admin"`
}

// JWTTTL - время жизни access-токена
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWT.TTLHours) * time.Hour
}

// SMTPEnabled - настроена ли отправка почты
func (c *Config) SMTPEnabled() bool {
	return c.Email.SMTPHost != ""
}

var AppConfig *Config

// LoadConfig: .env -> config.yaml (если есть) -> переменные окружения.
// Переменные окружения всегда побеждают файл.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load собирает конфиг и возвращает ошибку вместо падения (удобно в тестах)
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to read .env file: %v", err)
	}

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if err := readFile(configPath, &cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Config file %s not found, using environment only", path)
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
