package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
)

type Config struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	DatabaseDSN       string `env:"DATABASE_URI"`
	MigrationsDir     string `env:"MIGRATIONS_DIR"`
	JWTUserSecret     string `env:"JWT_USER_SECRET"`
	ReviewRewardCoins string `env:"REVIEW_REWARD_COINS"`
	SignupGrantCoins  string `env:"SIGNUP_GRANT_COINS"`
	DepositPolicy     string `env:"DEPOSIT_POLICY"`
	NotifyWebhookURL  string `env:"NOTIFY_WEBHOOK_URL"`
}

// ReviewReward возвращает размер награды за отзыв. Значение парсится лениво, ошибки
// формата отлавливаются в LoadConfig.
func (c *Config) ReviewReward() decimal.Decimal {
	d, _ := decimal.NewFromString(c.ReviewRewardCoins)
	return d
}

func (c *Config) SignupGrant() decimal.Decimal {
	d, _ := decimal.NewFromString(c.SignupGrantCoins)
	return d
}

func (c *Config) DepositPolicyType() domain.DepositPolicyType {
	return domain.DepositPolicyType(c.DepositPolicy)
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func validateConfig(conf *Config) error {
	if conf.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return errors.New("JWT secret is not set")
	}
	if _, err := decimal.NewFromString(conf.ReviewRewardCoins); err != nil {
		return fmt.Errorf("invalid review reward value %q: %s", conf.ReviewRewardCoins, err.Error())
	}
	if _, err := decimal.NewFromString(conf.SignupGrantCoins); err != nil {
		return fmt.Errorf("invalid signup grant value %q: %s", conf.SignupGrantCoins, err.Error())
	}
	switch domain.DepositPolicyType(conf.DepositPolicy) {
	case domain.DepositPolicyRetain, domain.DepositPolicyRefund:
	default:
		return fmt.Errorf("unknown deposit policy %q", conf.DepositPolicy)
	}
	return nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "", "JWT signing secret")
	flag.StringVar(&flagConfig.ReviewRewardCoins, "reward", "5", "Coins granted for a trade review")
	flag.StringVar(&flagConfig.SignupGrantCoins, "grant", "100", "Coins granted on registration")
	flag.StringVar(&flagConfig.DepositPolicy, "deposit-policy", "retain",
		"Deposit handling on rental completion: retain|refund")
	flag.StringVar(&flagConfig.NotifyWebhookURL, "webhook", "", "Notification webhook URL (optional)")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:     defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:     defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		ReviewRewardCoins: defaultIfBlank(envConfig.ReviewRewardCoins, flagsConfig.ReviewRewardCoins),
		SignupGrantCoins:  defaultIfBlank(envConfig.SignupGrantCoins, flagsConfig.SignupGrantCoins),
		DepositPolicy:     defaultIfBlank(envConfig.DepositPolicy, flagsConfig.DepositPolicy),
		NotifyWebhookURL:  defaultIfBlank(envConfig.NotifyWebhookURL, flagsConfig.NotifyWebhookURL),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
