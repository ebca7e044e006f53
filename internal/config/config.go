package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	URLExpiry       time.Duration `mapstructure:"url_expiry"`
}

// AuthConfig points at the Cognito user pool that issues bearer tokens.
type AuthConfig struct {
	Region      string `mapstructure:"region"`
	UserPoolID  string `mapstructure:"user_pool_id"`
	AppClientID string `mapstructure:"app_client_id"`
	// JWKSURL overrides the pool's well-known JWKS location (local IdP emulators, tests).
	JWKSURL      string        `mapstructure:"jwks_url"`
	JWKSCacheTTL time.Duration `mapstructure:"jwks_cache_ttl"`
}

// Issuer is the expected "iss" claim of tokens from the pool.
func (a AuthConfig) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", a.Region, a.UserPoolID)
}

// KeySetURL is where the pool publishes its signing keys.
func (a AuthConfig) KeySetURL() string {
	if a.JWKSURL != "" {
		return a.JWKSURL
	}
	return a.Issuer() + "/.well-known/jwks.json"
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	File     string `mapstructure:"file"`
	ToStdout bool   `mapstructure:"to_stdout"`
	JSON     bool   `mapstructure:"json"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// auth.user_pool_id -> AUTH_USER_POOL_ID
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_tracker")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket_name", "fitness-tracker-exports")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.url_expiry", "15m")
	v.SetDefault("auth.region", "us-east-1")
	// Registered so AutomaticEnv can resolve them during Unmarshal.
	v.SetDefault("auth.user_pool_id", "")
	v.SetDefault("auth.app_client_id", "")
	v.SetDefault("auth.jwks_url", "")
	v.SetDefault("auth.jwks_cache_ttl", "1h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.to_stdout", true)
	v.SetDefault("log.json", false)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No config file; defaults and env vars only.
		err = nil
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.Auth.UserPoolID == "" && c.Auth.JWKSURL == "" {
		return errors.New("auth.user_pool_id is required")
	}
	if c.Auth.AppClientID == "" {
		return errors.New("auth.app_client_id is required")
	}
	return nil
}
