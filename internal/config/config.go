package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Pretty  bool   `mapstructure:"pretty"`
	NoColor bool   `mapstructure:"no_color"`
}

// requiredEnv maps the connection settings to the environment variables that
// provide them, in the order they are reported when absent. An empty value
// counts as unset.
var requiredEnv = []struct {
	key string
	env string
}{
	{"database.host", "PGHOST"},
	{"database.port", "PGPORT"},
	{"database.user", "PGUSER"},
	{"database.password", "PGPASSWORD"},
	{"database.name", "PGDATABASE"},
}

// MissingEnvError reports which required connection variables are absent. It
// is the only load failure callers treat as fatal.
type MissingEnvError struct {
	Missing []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf(
		"Missing environment variables: %s. Copy config.example.yaml to config.yaml and fill in your credentials.",
		strings.Join(e.Missing, ", "),
	)
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables win over file values. path may be empty, in which
// case ./config/config.yaml and ./config.yaml are tried and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	for _, binding := range requiredEnv {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", binding.env, err)
		}
	}

	var missing []string
	for _, binding := range requiredEnv {
		if v.GetString(binding.key) == "" {
			missing = append(missing, binding.env)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingEnvError{Missing: missing}
	}

	if port := v.GetString("database.port"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return nil, fmt.Errorf("PGPORT must be an integer, got %q", port)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.connect_timeout", "5s")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "5m")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)
	v.SetDefault("logging.no_color", false)
}
