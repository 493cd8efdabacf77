package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	CORS        CORSConfig        `yaml:"cors"`
	Email       EmailConfig       `yaml:"email"`
	S3          S3Config          `yaml:"s3"`
	Certificate CertificateConfig `yaml:"certificate"`
}

type ServerConfig struct {
	Port               string `yaml:"port"`
	BasePath           string `yaml:"base_path"`
	Mode               string `yaml:"mode"`
	LogLevel           string `yaml:"log_level"`
	ReadTimeoutSec     int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec    int    `yaml:"write_timeout_sec"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
}

func (s ServerConfig) ReadTimeout() time.Duration     { return time.Duration(s.ReadTimeoutSec) * time.Second }
func (s ServerConfig) WriteTimeout() time.Duration    { return time.Duration(s.WriteTimeoutSec) * time.Second }
func (s ServerConfig) ShutdownTimeout() time.Duration { return time.Duration(s.ShutdownTimeoutSec) * time.Second }

type DatabaseConfig struct {
	URL                string `yaml:"url"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMin int    `yaml:"conn_max_lifetime_min"`
}

func (d DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeMin) * time.Minute
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// activity cache TTL
	ScheduleTTLSec int `yaml:"schedule_ttl_sec"`
}

func (r RedisConfig) ScheduleTTL() time.Duration {
	return time.Duration(r.ScheduleTTLSec) * time.Second
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key"`
	From         string `yaml:"from"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type CertificateConfig struct {
	TituloEvento string `yaml:"titulo_evento"`
	Emisor       string `yaml:"emisor"`
}

// Load reads the YAML config file if present and applies environment
// variable overrides on top of the defaults
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               "3001",
			BasePath:           "/api",
			Mode:               "debug",
			LogLevel:           "info",
			ReadTimeoutSec:     15,
			WriteTimeoutSec:    30,
			ShutdownTimeoutSec: 10,
		},
		Database: DatabaseConfig{
			MaxOpenConns:       25,
			MaxIdleConns:       5,
			ConnMaxLifetimeMin: 30,
		},
		Redis: RedisConfig{
			DB:             0,
			ScheduleTTLSec: 60,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Certificate: CertificateConfig{
			TituloEvento: "Jornada de Ingeniería Industrial",
			Emisor:       "Facultad de Ingeniería",
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			cfg.Redis.DB = db
		}
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORS.AllowedOrigins = []string{origin}
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		cfg.Email.ResendAPIKey = apiKey
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		cfg.Email.From = from
	}
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.S3.Bucket = bucket
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		cfg.S3.Region = region
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.S3.Endpoint = endpoint
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		cfg.S3.AccessKey = accessKey
	}
	if secretKey := os.Getenv("S3_SECRET_KEY"); secretKey != "" {
		cfg.S3.SecretKey = secretKey
	}

	return cfg, nil
}
