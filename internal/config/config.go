package config

import (
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type AuthConfig struct {
	// TokenPrefix is prepended to every issued bearer token so leaked
	// credentials are recognizable in logs and scanners.
	TokenPrefix string `mapstructure:"token_prefix"`
	// TokenTTLSec bounds token lifetime; 0 means tokens live until logout.
	TokenTTLSec int `mapstructure:"token_ttl_sec"`
	BcryptCost  int `mapstructure:"bcrypt_cost"`
}

type S3Config struct {
	Endpoint         string `mapstructure:"endpoint"`
	Region           string `mapstructure:"region"`
	Bucket           string `mapstructure:"bucket"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	UsePathStyle     bool   `mapstructure:"use_path_style"`
	PresignExpireSec int    `mapstructure:"presign_expire_sec"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	S3        S3Config        `mapstructure:"s3"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Load reads config.yaml from the working directory (optional) and overlays
// UNICOLLAB_* environment variables, e.g. UNICOLLAB_DATABASE_DSN.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "unicollab-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.dsn", "host=localhost user=unicollab password=unicollab dbname=unicollab port=5432 sslmode=disable")
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("auth.token_prefix", "uc_")
	v.SetDefault("auth.token_ttl_sec", 0)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 falls back to bcrypt.DefaultCost
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "unicollab-resources")
	v.SetDefault("s3.presign_expire_sec", 900)
	v.SetDefault("telemetry.sample_ratio", 1.0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("UNICOLLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
