package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"fieldserve"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string `envconfig:"FIELDSERVE_ADDRESS" default:":3443"`
	BaseUrl         string `envconfig:"FIELDSERVE_BASE_URL" default:"https://localhost:3443"`
	LogLevel        string `envconfig:"FIELDSERVE_LOG_LEVEL" default:"info"`
	MigrationFolder string `envconfig:"FIELDSERVE_MIGRATIONS_FOLDER" default:""`
	Auth            Auth
	Razorpay        Razorpay
}

type Auth struct {
	AuthenticationType string `envconfig:"FIELDSERVE_AUTH" default:""`
	JwkCertURL         string `envconfig:"FIELDSERVE_JWK_URL" default:""`
	LocalSigningKey    string `envconfig:"FIELDSERVE_SIGNING_KEY" default:""`
}

type Razorpay struct {
	KeyID      string        `envconfig:"FIELDSERVE_RAZORPAY_KEY_ID" default:""`
	KeySecret  string        `envconfig:"FIELDSERVE_RAZORPAY_KEY_SECRET" default:""`
	BaseURL    string        `envconfig:"FIELDSERVE_RAZORPAY_BASE_URL" default:"https://api.razorpay.com"`
	Timeout    time.Duration `envconfig:"FIELDSERVE_RAZORPAY_TIMEOUT" default:"10s"`
	MaxRetries int           `envconfig:"FIELDSERVE_RAZORPAY_MAX_RETRIES" default:"2"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewDefault returns the configuration without reading the environment. Used by tests.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type: "sqlite",
			Name: "file::memory:?cache=shared",
		},
		Service: &svcConfig{
			Address:  ":3443",
			BaseUrl:  "https://localhost:3443",
			LogLevel: "info",
		},
	}
}
