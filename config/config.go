package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Log    LogConfig    `mapstructure:"log"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Users  UsersConfig  `mapstructure:"users"`
	API    APIConfig    `mapstructure:"api"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address for net/http.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type UsersConfig struct {
	// HashPasswords stores bcrypt hashes instead of the submitted password.
	HashPasswords bool `mapstructure:"hash_passwords"`
}

type APIConfig struct {
	// StrictNotFound makes update/delete of a missing id fail with 404
	// instead of answering 200.
	StrictNotFound bool `mapstructure:"strict_not_found"`
}

// envBindings maps config keys to the plain environment variable names the
// deployment already uses.
var envBindings = map[string]string{
	"server.port":          "PORT",
	"mongo.uri":            "MONGO_URI",
	"mongo.database":       "MONGO_DATABASE",
	"log.level":            "LOG_LEVEL",
	"log.format":           "LOG_FORMAT",
	"users.hash_passwords": "HASH_PASSWORDS",
	"api.strict_not_found": "STRICT_NOT_FOUND",
}

// Load reads configuration from defaults, an optional config file, a .env
// file and the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "test")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("users.hash_passwords", true)
	v.SetDefault("api.strict_not_found", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, "SMS_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return errors.New("config: mongo.uri (MONGO_URI) is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("config: mongo.database must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range 1-65535", c.Server.Port)
	}
	return nil
}
