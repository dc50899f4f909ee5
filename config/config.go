package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSensorDB int    `mapstructure:"REDIS_SENSOR_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// OpenWeatherMap.
	OpenWeatherAPIKey  string `mapstructure:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `mapstructure:"OPENWEATHER_BASE_URL"`

	// Campus coordinates used for weather lookups.
	CampusLat float64 `mapstructure:"CAMPUS_LAT"`
	CampusLon float64 `mapstructure:"CAMPUS_LON"`

	// iCal feed with campus events.
	CalendarFeedURL string `mapstructure:"CALENDAR_FEED_URL"`

	// Key required by the bulk-import endpoints.
	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`
}

var AppConfig Config

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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SENSOR_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("CAMPUS_LAT", 25.7492)
	viper.SetDefault("CAMPUS_LON", -80.2635)
	viper.SetDefault("CALENDAR_FEED_URL", "")
	viper.SetDefault("ADMIN_API_KEY", "")

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

func IsProduction() bool {
	return GetEnv() == "production"
}
