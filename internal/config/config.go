package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultDotEnv = ".env"

type Config struct {
	Env        string           `yaml:"env"        env-default:"local"` // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       `yaml:"http"`                           // HTTP holds the public API listener configuration.
	Monitoring MonitoringConfig `yaml:"monitoring"`                     // Monitoring holds the metrics/readiness listener configuration.
	Postgres   PostgresConfig   `yaml:"postgres"   env-required:"true"` // Postgres holds the database configuration.
}

// HTTPConfig struct holds the public API server settings.
type HTTPConfig struct {
	Host            string        `yaml:"host"`                                // Host is the interface to bind, empty for all.
	Port            int           `yaml:"port"             env-default:"3000"` // Port is the API port.
	ReadTimeout     time.Duration `yaml:"read_timeout"     env-default:"10s"`  // ReadTimeout bounds reading a request.
	WriteTimeout    time.Duration `yaml:"write_timeout"    env-default:"10s"`  // WriteTimeout bounds writing a response.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`   // ShutdownTimeout bounds graceful shutdown.
}

// Addr returns host:port for the API listener.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// MonitoringConfig struct holds the monitoring server settings.
type MonitoringConfig struct {
	Port int `yaml:"port" env-default:"8080"` // Port serves /metrics and /healthz.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host          string `yaml:"host"`                                    // Host is the database server address.
	Port          string `yaml:"port"           env-default:"5432"`       // Port is the database server port.
	User          string `yaml:"user"`                                    // User is the database user.
	Password      string `yaml:"password"`                                // Password is the database user's password.
	Dbname        string `yaml:"db_name"`                                 // Dbname is the name of the database.
	SSLMode       string `yaml:"ssl_mode"       env-default:"disable"`    // SSLMode is passed to the driver as sslmode.
	MaxConns      int32  `yaml:"max_conns"      env-default:"10"`         // MaxConns caps the connection pool.
	MinConns      int32  `yaml:"min_conns"      env-default:"3"`          // MinConns is kept open by the pool.
	MigrationsDir string `yaml:"migrations_dir" env-default:"migrations"` // MigrationsDir is read by the migrator.
}

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string]string{
	"env":                     "HESTIA_ENV",
	"http.host":               "HTTP_HOST",
	"http.port":               "HTTP_PORT",
	"http.read_timeout":       "HTTP_READ_TIMEOUT",
	"http.write_timeout":      "HTTP_WRITE_TIMEOUT",
	"http.shutdown_timeout":   "HTTP_SHUTDOWN_TIMEOUT",
	"monitoring.port":         "MONITORING_PORT",
	"postgres.host":           "DB_HOST",
	"postgres.port":           "DB_PORT",
	"postgres.user":           "DB_USERNAME",
	"postgres.password":       "DB_PASSWORD",
	"postgres.db_name":        "DB_NAME",
	"postgres.ssl_mode":       "DB_SSLMODE",
	"postgres.max_conns":      "DB_MAX_CONNS",
	"postgres.min_conns":      "DB_MIN_CONNS",
	"postgres.migrations_dir": "MIGRATIONS_DIR",
}

// MustLoad loads the configuration and panics if it cannot be built.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load builds the configuration from, in increasing priority: defaults, the YAML file at
// CONFIG_PATH, a dotenv file (DOTENV_PATH or ./.env) and the process environment.
func Load() (*Config, error) {
	vpr := viper.New()
	vpr.SetConfigType("yaml")
	setDefaults(vpr)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	dotenv, err := readDotEnv()
	if err != nil {
		return nil, err
	}

	for key, envName := range envBindings {
		if _, ok := os.LookupEnv(envName); !ok {
			if value, found := dotenv[envName]; found {
				vpr.Set(key, value)
				continue
			}
		}
		_ = vpr.BindEnv(key, envName)
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Host:            vpr.GetString("http.host"),
			Port:            vpr.GetInt("http.port"),
			ReadTimeout:     vpr.GetDuration("http.read_timeout"),
			WriteTimeout:    vpr.GetDuration("http.write_timeout"),
			ShutdownTimeout: vpr.GetDuration("http.shutdown_timeout"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
		Postgres: PostgresConfig{
			Host:          vpr.GetString("postgres.host"),
			Port:          vpr.GetString("postgres.port"),
			User:          vpr.GetString("postgres.user"),
			Password:      vpr.GetString("postgres.password"),
			Dbname:        vpr.GetString("postgres.db_name"),
			SSLMode:       vpr.GetString("postgres.ssl_mode"),
			MaxConns:      vpr.GetInt32("postgres.max_conns"),
			MinConns:      vpr.GetInt32("postgres.min_conns"),
			MigrationsDir: vpr.GetString("postgres.migrations_dir"),
		},
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures required fields are present and numeric settings are sane.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 {
		return errors.New("http.port must be a positive number")
	}
	if c.Monitoring.Port <= 0 {
		return errors.New("monitoring.port must be a positive number")
	}
	if c.Monitoring.Port == c.HTTP.Port {
		return errors.New("monitoring.port must differ from http.port")
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("http timeouts must be positive durations")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Postgres.User == "" || c.Postgres.Dbname == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.MaxConns <= 0 || c.Postgres.MinConns < 0 || c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("invalid pool size: min=%d max=%d", c.Postgres.MinConns, c.Postgres.MaxConns)
	}

	return nil
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.port", 3000)
	vpr.SetDefault("http.read_timeout", 10*time.Second)
	vpr.SetDefault("http.write_timeout", 10*time.Second)
	vpr.SetDefault("http.shutdown_timeout", 5*time.Second)
	vpr.SetDefault("monitoring.port", 8080)
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("postgres.ssl_mode", "disable")
	vpr.SetDefault("postgres.max_conns", 10)
	vpr.SetDefault("postgres.min_conns", 3)
	vpr.SetDefault("postgres.migrations_dir", "migrations")
}

// readDotEnv returns the variables of the dotenv file. A missing default file is not an error.
func readDotEnv() (map[string]string, error) {
	path, explicit := os.LookupEnv("DOTENV_PATH")
	if !explicit {
		path = defaultDotEnv
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to stat dotenv file %s: %w", path, err)
	}

	envMap, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dotenv file %s: %w", path, err)
	}

	return envMap, nil
}
