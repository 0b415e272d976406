package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration. The database name, port and
// user come from the command line; everything else is environment-driven.
type Config struct {
	DBHost       string `mapstructure:"DB_HOST"`
	DBSSLMode    string `mapstructure:"DB_SSLMODE"`
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
	ShipOrigin   string `mapstructure:"SHIP_ORIGIN"`
	ShipCourier  string `mapstructure:"SHIP_COURIER"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("SHIP_ORIGIN", "Los Angeles, CA")
	viper.SetDefault("SHIP_COURIER", "USPS")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
