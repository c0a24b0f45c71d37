package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MAINT"

// Database drivers understood by the repository layer.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port     string
	Log      LogConfig
	Server   ServerConfig
	DB       DBConfig
	Auth     AuthConfig
	Workflow WorkflowConfig
	Seed     SeedConfig
	MQTT     MQTTConfig
	WS       WSConfig
}

type LogConfig struct {
	Level  string
	Format string // console | json
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type DBConfig struct {
	Driver string
	Path   string // sqlite file
	DSN    string // postgres connection string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type WorkflowConfig struct {
	// PendingTTL is how long an unconfirmed board transition survives.
	PendingTTL    time.Duration
	SweepInterval time.Duration
}

type SeedConfig struct {
	Path string
}

// MQTTConfig enables timeline notifications when Broker is set.
type MQTTConfig struct {
	Broker      string
	ClientID    string
	TopicPrefix string
}

type WSConfig struct {
	DefaultInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "maintenance.db")
	v.SetDefault("db.dsn", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("workflow.pending_ttl", 10*time.Minute)
	v.SetDefault("workflow.sweep_interval", 30*time.Second)
	v.SetDefault("seed.path", "")
	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.client_id", "asset-maintenance")
	v.SetDefault("mqtt.topic_prefix", "maintenance")
	v.SetDefault("ws.default_interval", 5*time.Second)
}

// Flags returns the command-line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to the YAML config file (default configs/config.yml)")
	fs.String("env-file", ".env", "dotenv file loaded before reading the environment")
	fs.String("port", "", "HTTP listen port")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("db-driver", "", "storage backend: sqlite, postgres, memory")
	fs.String("seed", "", "YAML file with records loaded into an empty store")
	return fs
}

// flag name -> viper key
var flagKeys = map[string]string{
	"port":      "port",
	"log-level": "log.level",
	"db-driver": "db.driver",
	"seed":      "seed.path",
}

// Load resolves configuration from, lowest to highest precedence: defaults,
// the config file, the environment (MAINT_DB_DRIVER, ...), and parsed flags.
// A missing default config file is not an error; an explicit --config path must exist.
func Load(fs *pflag.FlagSet) (Config, error) {
	envFile, _ := fs.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Server: ServerConfig{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
		},
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("db.driver")),
			Path:   v.GetString("db.path"),
			DSN:    v.GetString("db.dsn"),
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Workflow: WorkflowConfig{
			PendingTTL:    v.GetDuration("workflow.pending_ttl"),
			SweepInterval: v.GetDuration("workflow.sweep_interval"),
		},
		Seed: SeedConfig{Path: v.GetString("seed.path")},
		MQTT: MQTTConfig{
			Broker:      v.GetString("mqtt.broker"),
			ClientID:    v.GetString("mqtt.client_id"),
			TopicPrefix: strings.Trim(v.GetString("mqtt.topic_prefix"), "/"),
		},
		WS: WSConfig{DefaultInterval: v.GetDuration("ws.default_interval")},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			errs = append(errs, errors.New("db.path is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			errs = append(errs, errors.New("db.dsn is required for the postgres driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("db.driver %q is not one of sqlite, postgres, memory", c.DB.Driver))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of console, json", c.Log.Format))
	}
	if c.Auth.SigningKey == "" {
		errs = append(errs, errors.New("auth.signing_key is required (MAINT_AUTH_SIGNING_KEY)"))
	}
	for _, d := range []struct {
		key string
		val time.Duration
	}{
		{"auth.token_ttl", c.Auth.TokenTTL},
		{"workflow.pending_ttl", c.Workflow.PendingTTL},
		{"workflow.sweep_interval", c.Workflow.SweepInterval},
		{"ws.default_interval", c.WS.DefaultInterval},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
	} {
		if d.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", d.key))
		}
	}
	return errors.Join(errs...)
}
