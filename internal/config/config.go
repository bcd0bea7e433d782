package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	EMAIL_TRANSPORT_SES  = "ses"
	EMAIL_TRANSPORT_SMTP = "smtp"

	PICTURE_STORAGE_FS = "fs"
	PICTURE_STORAGE_S3 = "s3"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`
	Port  uint `env:"PORT" envDefault:"9090"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	RedisURL       string `env:"REDIS_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	SecretKey          string   `env:"SECRET_KEY,required,notEmpty"`
	PreviousSecretKeys []string `env:"PREVIOUS_SECRET_KEYS" envSeparator:","`
	PasswordPepper     string   `env:"PASSWORD_PEPPER,required,notEmpty"`
	BcryptHasherCost   int      `env:"BCRYPT_COST" envDefault:"12"`

	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"30m"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required,notEmpty"`
	SessionTTL                 time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RememberSessionTTL         time.Duration `env:"REMEMBER_SESSION_TTL" envDefault:"720h"`

	EmailTransport string        `env:"EMAIL_TRANSPORT" envDefault:"ses"`
	EmailSender    string        `env:"EMAIL_SENDER,required,notEmpty"`
	SmtpHost       string        `env:"SMTP_HOST"`
	SmtpPort       int           `env:"SMTP_PORT" envDefault:"587"`
	SmtpUsername   string        `env:"SMTP_USERNAME"`
	SmtpPassword   string        `env:"SMTP_PASSWORD"`
	SmtpTimeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	SmtpInsecure   bool          `env:"SMTP_INSECURE" envDefault:"false"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	RabbitmqURL string `env:"RABBITMQ_URL"`
	EmailQueue  string `env:"EMAIL_QUEUE" envDefault:"emails"`

	PictureStorage  string `env:"PICTURE_STORAGE" envDefault:"fs"`
	PicturesDir     string `env:"PICTURES_DIR" envDefault:"static/profile_pics"`
	PictureMaxBytes int64  `env:"PICTURE_MAX_BYTES" envDefault:"5242880"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Prefix        string `env:"S3_PREFIX" envDefault:"profile_pics/"`
	S3Endpoint      string `env:"S3_ENDPOINT"`

	SentryDsn      *url.URL `env:"SENTRY_DSN"`
	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EmailTransport {
	case EMAIL_TRANSPORT_SES:
	case EMAIL_TRANSPORT_SMTP:
		if c.SmtpHost == "" {
			return fmt.Errorf("SMTP_HOST must be set for smtp email transport")
		}
	default:
		return fmt.Errorf("invalid EMAIL_TRANSPORT value: %q", c.EmailTransport)
	}

	switch c.PictureStorage {
	case PICTURE_STORAGE_FS:
	case PICTURE_STORAGE_S3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set for s3 picture storage")
		}
	default:
		return fmt.Errorf("invalid PICTURE_STORAGE value: %q", c.PictureStorage)
	}

	if c.PasswordResetValidDuration <= 0 {
		return fmt.Errorf("PASSWORD_RESET_VALID_DURATION must be positive")
	}
	if c.SessionTTL <= 0 || c.RememberSessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL and REMEMBER_SESSION_TTL must be positive")
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// UseEmailQueue reports whether emails go through RabbitMQ instead of direct delivery.
func (c *Config) UseEmailQueue() bool {
	return c.RabbitmqURL != ""
}

// MigrationsConfig is the subset of settings needed to run migrations.
type MigrationsConfig struct {
	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func LoadMigrations() (*MigrationsConfig, error) {
	cfg := &MigrationsConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
