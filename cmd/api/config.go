package main

import (
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type configuration struct {
	Web          web          `toml:"web" envPrefix:"WEB_"`
	Database     database     `toml:"database" envPrefix:"DATABASE_"`
	Registration registrationConfig `toml:"registration" envPrefix:"REGISTRATION_"`
	Log          logging      `toml:"log" envPrefix:"LOG_"`
}

type web struct {
	Listen             string   `toml:"listen" env:"LISTEN"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type database struct {
	Host     string `toml:"host" env:"HOST"`
	Port     int    `toml:"port" env:"PORT"`
	User     string `toml:"user" env:"USER"`
	Password string `toml:"password" env:"PASSWORD"`
	Name     string `toml:"dbname" env:"NAME"`
}

// registrationConfig selects where signups are sent. An empty endpoint stores
// users in this service's own database.
type registrationConfig struct {
	Endpoint       string `toml:"endpoint" env:"ENDPOINT"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
}

type logging struct {
	Level string `toml:"level" env:"LEVEL"`
}

func defaultConfig() configuration {
	return configuration{
		web{
			Listen:             "127.0.0.1:8080",
			CORSAllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		database{
			Host:     "localhost",
			Port:     5432,
			User:     "username",
			Password: "password",
			Name:     "database_name",
		},
		registrationConfig{
			TimeoutSeconds: 10,
		},
		logging{
			Level: "info",
		},
	}
}

func parseConfig(path string, logger *log.Logger) (configuration, error) {
	cfg := defaultConfig()

	configData, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
		logger.Info("config doesn't exist, default values will be used if environment variables aren't set", "path", path)
	} else {
		logger.Info("config exists, but environment variables will override values set in config", "path", path)
		if err = toml.Unmarshal(configData, &cfg); err != nil {
			return cfg, err
		}
	}

	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, err
	}

	if err = env.Parse(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (d database) connectionString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	return u.String()
}
