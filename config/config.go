package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Port              string `mapstructure:"PORT"`
	GinMode           string `mapstructure:"GIN_MODE"`
	FrontendURL       string `mapstructure:"FRONTEND_URL"`
	SupabaseURL       string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey   string `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseJWTSecret string `mapstructure:"SUPABASE_JWT_SECRET"`
}

func LoadConfig() (config Config, err error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so without this
	// an env-only deployment (no .env file) would load nothing.
	for _, key := range []string{
		"DATABASE_URL", "PORT", "GIN_MODE", "FRONTEND_URL",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_JWT_SECRET",
	} {
		if err = viper.BindEnv(key); err != nil {
			return
		}
	}

	err = viper.ReadInConfig()
	if err != nil {
		log.Printf("Warning: Error reading config file: %v. Will try to use environment variables instead.", err)
		// Continue execution as viper will still check environment variables
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	return
}
