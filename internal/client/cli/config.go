package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".lingosync"
	envPrefix  = "LINGOSYNC"
)

// Config настройки клиента.
// Приоритет: значения по умолчанию < $HOME/.lingosync.yaml < LINGOSYNC_* < флаги
type Config struct {
	Server       string        `mapstructure:"server"`
	DB           string        `mapstructure:"db"`
	LogFile      string        `mapstructure:"log_file"`
	LogLevel     string        `mapstructure:"log_level"`
	QueueSize    int           `mapstructure:"queue_size"`
	FlushTimeout time.Duration `mapstructure:"flush_timeout"`
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() Config {
	return Config{
		Server:       "http://localhost:8080",
		DB:           "lingosync-client.db",
		LogLevel:     "warn",
		QueueSize:    64,
		FlushTimeout: 10 * time.Second,
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"server":        "server",
	"db":            "db",
	"log-file":      "log_file",
	"log-level":     "log_level",
	"queue-size":    "queue_size",
	"flush-timeout": "flush_timeout",
}

// registerConfigFlags добавляет флаги настроек в fs
func registerConfigFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("server", d.Server, "Server URL")
	fs.String("db", d.DB, "Path to local database")
	fs.String("log-file", d.LogFile, "Write logs to this file (rotated) instead of stderr")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Int("queue-size", d.QueueSize, "Capacity of the background upload queue")
	fs.Duration("flush-timeout", d.FlushTimeout, "How long 'save' waits for the upload to finish")
}

// LoadConfig собирает настройки из всех источников.
// configFile задает явный путь к файлу; если пусто, ищется $HOME/.lingosync.yaml.
func LoadConfig(fs *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("server", d.Server)
	v.SetDefault("db", d.DB)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("queue_size", d.QueueSize)
	v.SetDefault("flush_timeout", d.FlushTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		// отсутствие файла в домашнем каталоге не ошибка, явно указанного - ошибка
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate проверяет настройки
func (c Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL %q", c.Server)
	}
	if c.DB == "" {
		return fmt.Errorf("db path is required")
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be positive, got %d", c.QueueSize)
	}
	if c.FlushTimeout <= 0 {
		return fmt.Errorf("flush_timeout must be positive, got %s", c.FlushTimeout)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
