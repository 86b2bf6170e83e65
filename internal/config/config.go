package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Checkout CheckoutConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	ClientDomain   string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// CheckoutConfig holds payment-provider configuration
type CheckoutConfig struct {
	BaseURL    string
	APIKey     string
	SuccessURL string
	CancelURL  string
	Mock       bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyEnvOverrides(&config)

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "3000")
	viper.SetDefault("Server.AllowedOrigins", []string{"http://localhost:5173"})
	viper.SetDefault("Server.ClientDomain", "http://localhost:5173")
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "BattleBox")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Checkout.BaseURL", "https://api.checkout.example.com")
	viper.SetDefault("Checkout.Mock", true)
	viper.SetDefault("LogLevel", "info")
}

// applyEnvOverrides applies the flat env-var names used in deployment, which
// viper's AutomaticEnv does not map onto the nested keys.
func applyEnvOverrides(cfg *Config) {
	cfg.Server.Port = GetEnv("PORT", cfg.Server.Port)
	cfg.Server.ClientDomain = GetEnv("CLIENT_DOMAIN", cfg.Server.ClientDomain)
	cfg.Server.AllowedOrigins = GetEnvAsSlice("ALLOWED_ORIGINS", ",", cfg.Server.AllowedOrigins)
	cfg.MongoDB.URI = GetEnv("MONGODB_URI", cfg.MongoDB.URI)
	cfg.MongoDB.Database = GetEnv("MONGODB_DATABASE", cfg.MongoDB.Database)
	cfg.JWT.Secret = GetEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.ExpiresIn = GetEnvAsInt("JWT_EXPIRES_IN", cfg.JWT.ExpiresIn)
	cfg.Checkout.BaseURL = GetEnv("CHECKOUT_BASE_URL", cfg.Checkout.BaseURL)
	cfg.Checkout.APIKey = GetEnv("CHECKOUT_API_KEY", cfg.Checkout.APIKey)
	cfg.Checkout.SuccessURL = GetEnv("CHECKOUT_SUCCESS_URL", cfg.Checkout.SuccessURL)
	cfg.Checkout.CancelURL = GetEnv("CHECKOUT_CANCEL_URL", cfg.Checkout.CancelURL)
	cfg.Checkout.Mock = GetEnvAsBool("CHECKOUT_MOCK", cfg.Checkout.Mock)
}
