package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Database
	HTTPServer
	Events
	Kafka
	Redis
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

type Database struct {
	Driver  string        `env:"DB_DRIVER" env-default:"mongo"`
	URL     string        `env:"DATABASE_URL" env-default:"mongodb://localhost:27017"`
	Name    string        `env:"DATABASE_NAME" env-default:"community"`
	Timeout time.Duration `env:"STORE_TIMEOUT" env-default:"5s"`

	// 是否显式配置，诊断接口使用
	URLSet  bool
	NameSet bool
}

type HTTPServer struct {
	BindAddress     string        `env:"BIND_ADDRESS" env-default:"0.0.0.0"`
	BindPort        string        `env:"PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" env-default:"*" env-separator:","`
}

type Events struct {
	Backend string `env:"EVENTS_BACKEND" env-default:"none"` // none | kafka | redis
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"community.events"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" env-default:"127.0.0.1:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	Stream   string `env:"REDIS_STREAM" env-default:"community:events"`
}

// New 先加载可选的 env 文件，再从环境变量读取配置
func New(env string) (*Config, error) {
	conf := &Config{}

	if env != "" {
		if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("godotenv.Load: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	_, conf.URLSet = os.LookupEnv("DATABASE_URL")
	_, conf.NameSet = os.LookupEnv("DATABASE_NAME")

	switch conf.Driver {
	case "mongo", "mysql", "memory":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", conf.Driver)
	}
	switch conf.Events.Backend {
	case "none", "kafka", "redis":
	default:
		return nil, fmt.Errorf("unsupported EVENTS_BACKEND %q", conf.Events.Backend)
	}

	return conf, nil
}

func (h HTTPServer) Addr() string {
	return fmt.Sprintf("%v:%v", h.BindAddress, h.BindPort)
}
