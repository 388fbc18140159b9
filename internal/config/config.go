package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE"`
	Game     Game    `yaml:"game"`
	Storage  Storage `yaml:"storage"`
}

type Game struct {
	// Mode is asked on startup when set to "ask".
	Mode      string `yaml:"mode" env:"GAME_MODE" env-default:"ask" validate:"oneof=ask computer human auto"`
	FirstMove string `yaml:"first-move" env:"GAME_FIRST_MOVE" env-default:"ask" validate:"oneof=ask human computer"`
	// SessionID names the snapshot to resume. A fresh id is generated when empty.
	SessionID string `yaml:"session-id" env:"GAME_SESSION_ID"`
	// Color is auto (detect the terminal), always or never.
	Color     string `yaml:"color" env:"GAME_COLOR" env-default:"auto" validate:"oneof=auto always never"`
}

type Storage struct {
	Driver      string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory redis"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"STORAGE_SNAPSHOT_TTL" env-default:"24h" validate:"gte=0"`
	Redis       Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required,hostname_rfc1123"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required,numeric"`
}

// Load reads path, or only the environment when path does not exist, and
// validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
