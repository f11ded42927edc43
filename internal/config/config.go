package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	SMTP     SMTPConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// RazorpayConfig holds payment-gateway configuration
type RazorpayConfig struct {
	BaseURL     string
	KeyID       string
	KeySecret   string
	MockGateway bool
}

// SMTPConfig holds mail-relay configuration
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	MockMail bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "5000")
	viper.SetDefault("Server.AllowedHosts", []string{"https://sharemitra.com"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "sharemitra")
	viper.SetDefault("JWT.ExpiresIn", 60*60) // 1 hour
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Razorpay.BaseURL", "https://api.razorpay.com/v1")
	viper.SetDefault("Razorpay.MockGateway", true)
	viper.SetDefault("SMTP.Port", 587)
	viper.SetDefault("SMTP.MockMail", true)
}
