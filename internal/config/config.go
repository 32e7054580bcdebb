package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

var ErrUnknownCacheDriver = errors.New("unknown cache driver")

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"error" env-description:"debug, info, warn or error"`
	LogFile    string        `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-description:"log destination, stderr when empty"`
	HumanMark  string        `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-description:"X or O, asked interactively when empty"`
	HumanFirst string        `yaml:"human-first" env:"TICTACTOE_HUMAN_FIRST" env-description:"y or n, asked interactively when empty"`
	MoveDelay  time.Duration `yaml:"move-delay" env:"TICTACTOE_MOVE_DELAY" env-description:"pause after the computer moves"`
	NoClear    bool          `yaml:"no-clear" env:"TICTACTOE_NO_CLEAR" env-description:"keep the terminal history instead of clearing it each turn"`
	Cache      Cache         `yaml:"cache"`
	Redis      Redis         `yaml:"redis"`
}

type Cache struct {
	Driver string        `yaml:"driver" env:"TICTACTOE_CACHE_DRIVER" env-default:"memory" env-description:"none, memory or redis"`
	Size   int           `yaml:"size" env:"TICTACTOE_CACHE_SIZE" env-default:"4096" env-description:"entries kept by the memory cache"`
	TTL    time.Duration `yaml:"ttl" env:"TICTACTOE_CACHE_TTL" env-description:"expiry of redis entries, unset keeps them"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"TICTACTOE_REDIS_DB" env-default:"0"`
}

// Load - reads the config file at path. A missing file is not an error: the config then comes from the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load, but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Cache.Driver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheDriver, that.Cache.Driver)
	}
}

// Usage - describes the environment variables, for the -help output.
func Usage() (string, error) {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return "", fmt.Errorf("unable to describe config: %w", err)
	}

	return description, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
