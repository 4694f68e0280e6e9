package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Upstream store API.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`

	// Browser session cookies.
	CookieMaxAgeDays int `mapstructure:"COOKIE_MAX_AGE_DAYS"`

	// Redis configuration (checkout sessions).
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCheckoutDB int    `mapstructure:"REDIS_CHECKOUT_DB"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Cart quantity limits. The two paths diverge on purpose: the store-level
	// clamp and the drawer input accept different maxima, and which one is
	// authoritative is a product decision, not ours.
	CartMaxQty   int `mapstructure:"CART_MAX_QTY"`
	DrawerMaxQty int `mapstructure:"DRAWER_MAX_QTY"`

	CheckoutSessionTTLMinutes int `mapstructure:"CHECKOUT_SESSION_TTL_MINUTES"`

	MaxSavedAddresses int `mapstructure:"MAX_SAVED_ADDRESSES"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:9000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("COOKIE_MAX_AGE_DAYS", 7)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHECKOUT_DB", 0)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CART_MAX_QTY", 3)
	viper.SetDefault("DRAWER_MAX_QTY", 99)
	viper.SetDefault("CHECKOUT_SESSION_TTL_MINUTES", 30)
	viper.SetDefault("MAX_SAVED_ADDRESSES", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}

// APITimeout returns the fixed timeout applied to every upstream call.
func APITimeout() time.Duration {
	return time.Duration(AppConfig.APITimeoutSeconds) * time.Second
}

// CookieMaxAge returns the lifetime of the session cookies in seconds.
func CookieMaxAge() int {
	return AppConfig.CookieMaxAgeDays * 24 * 60 * 60
}

// CheckoutSessionTTL returns the time-to-live of a checkout wizard session.
func CheckoutSessionTTL() time.Duration {
	return time.Duration(AppConfig.CheckoutSessionTTLMinutes) * time.Minute
}
