package config

import (
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"sponsorback/internal/money"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
		AccessTTL  string `yaml:"access_ttl"`
		RefreshTTL string `yaml:"refresh_ttl"`
	} `yaml:"auth"`
	Billing struct {
		DefaultCommissionRate string `yaml:"default_commission_rate"`
	} `yaml:"billing"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	return cfg
}

func (c Config) AccessTTL() time.Duration {
	return parseTTL(c.Auth.AccessTTL, 2*time.Hour)
}

func (c Config) RefreshTTL() time.Duration {
	return parseTTL(c.Auth.RefreshTTL, 720*time.Hour)
}

func (c Config) CommissionRate() decimal.Decimal {
	if c.Billing.DefaultCommissionRate == "" {
		return money.DefaultCommissionRate
	}
	rate, err := decimal.NewFromString(c.Billing.DefaultCommissionRate)
	if err != nil || !money.ValidRate(rate) {
		log.Printf("Invalid commission rate %q, using default", c.Billing.DefaultCommissionRate)
		return money.DefaultCommissionRate
	}
	return rate
}

func parseTTL(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}
