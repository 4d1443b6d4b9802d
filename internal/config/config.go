// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	JWTToken   `yaml:"jwttoken"`
	Notifier   `yaml:"notifier"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Notifier структура для настройки нотификатора продлений.
// Интервал фоновой переоценки и длительности показа уведомлений -
// UX-настройки, семантику классификации они не меняют.
type Notifier struct {
	CheckInterval        time.Duration `yaml:"check_interval" env-default:"24h"`
	TodayDisplayDuration time.Duration `yaml:"today_display_duration" env-default:"10s"`
	SoonDisplayDuration  time.Duration `yaml:"soon_display_duration" env-default:"8s"`
	UpcomingWindowDays   int           `yaml:"upcoming_window_days" env-default:"7"`
	FeedCapacity         int           `yaml:"feed_capacity" env-default:"100"`
}

// MustLoad функция для загрузки конфига, путь берется из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Notifier:\n"+
			"  CheckInterval: %s\n"+
			"  TodayDisplayDuration: %s\n"+
			"  SoonDisplayDuration: %s\n"+
			"  UpcomingWindowDays: %d\n"+
			"  FeedCapacity: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.CheckInterval,
		c.TodayDisplayDuration,
		c.SoonDisplayDuration,
		c.UpcomingWindowDays,
		c.FeedCapacity,
	)
}
