package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE"`
	Secret     string `env:"SECRET,notEmpty"`
	Port       uint16 `env:"PORT" envDefault:"8080"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,notEmpty"`
	RabbitmqURL    string `env:"RABBITMQ_URL,notEmpty"`

	RabbitmqMailExchange      string `env:"RABBITMQ_MAIL_EXCHANGE" envDefault:"pagecms"`
	RabbitmqOutgoingMailQueue string `env:"RABBITMQ_OUTGOING_MAIL_QUEUE" envDefault:"outgoing-mail"`

	BcryptHasherCost      int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	ValidationTokenTTL    time.Duration `env:"VALIDATION_TOKEN_TTL" envDefault:"24h"`
	PasswordResetTokenTTL time.Duration `env:"PASSWORD_RESET_TOKEN_TTL" envDefault:"1h"`

	AwsRegion                     string  `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailValidationTemplate    string  `env:"AWS_EMAIL_VALIDATION_TEMPLATE" envDefault:"account-validation"`
	AwsEmailValidationBaseUrl     url.URL `env:"AWS_EMAIL_VALIDATION_BASE_URL"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
