package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production         bool   `env:"PRODUCTION" envDefault:"false"`
	Port               string `env:"PORT" envDefault:"8081"`
	BackendURL         string `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	StoreDriver        string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath         string `env:"SQLITE_PATH" envDefault:"data/liferabbit.db"`
	RedisUrl           string `env:"REDIS_URL" envDefault:"localhost:6379"`
	PostgresUrl        string `env:"POSTGRES_URL" envDefault:""`
	TagFeatureUnlocked bool   `env:"TAG_FEATURE_UNLOCKED" envDefault:"false"`
	TelegramToken      string `env:"TELEGRAM_TOKEN" envDefault:""`
	TelegramChatID     int64  `env:"TELEGRAM_CHAT_ID" envDefault:"0"`
	DigestSpec         string `env:"DIGEST_SPEC" envDefault:"0 8 * * *"`
	Timezone           string `env:"TIMEZONE" envDefault:"Local"`
}

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func BackendURL() string {
	return conf.BackendURL
}

func StoreDriver() string {
	return conf.StoreDriver
}

func SQLitePath() string {
	return conf.SQLitePath
}

func RedisURL() string {
	return conf.RedisUrl
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func TagFeatureUnlocked() bool {
	return conf.TagFeatureUnlocked
}

func TelegramToken() string {
	return conf.TelegramToken
}

func TelegramChatID() int64 {
	return conf.TelegramChatID
}

func DigestEnabled() bool {
	return conf.TelegramToken != "" && conf.TelegramChatID != 0
}

func DigestSpec() string {
	return conf.DigestSpec
}

// Location resolves TIMEZONE, falling back to the local zone.
func Location() *time.Location {
	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
}
