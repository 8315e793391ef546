package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	InternalToken   string `envconfig:"INTERNAL_TOKEN" required:"true"`
	CORSAllowOrigin string `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`

	// Identity printed on every document.
	Issuer struct {
		Name     string `envconfig:"ISSUER_NAME" default:"Rafael Armando Jara Fernandez"`
		Location string `envconfig:"ISSUER_LOCATION" default:"San Luis Río Colorado, Sonora, México"`
		SignedBy string `envconfig:"ISSUER_SIGNED_BY" default:"Rafael Armando Jara"`
		Phone    string `envconfig:"ISSUER_PHONE" default:"(653) 123-4567"`
		Email    string `envconfig:"ISSUER_EMAIL" default:"contacto@jara.com"`
	}

	// Payment panel contents.
	Bank struct {
		Name    string `envconfig:"BANK_NAME" default:"BBVA"`
		Holder  string `envconfig:"BANK_HOLDER" default:"Rafael Armando Jara Fernandez"`
		Account string `envconfig:"BANK_ACCOUNT" default:"1234 5678 9012 3456"`
		CLABE   string `envconfig:"BANK_CLABE" default:"012 3456 7890 1234 56"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	return &cfg, nil
}
