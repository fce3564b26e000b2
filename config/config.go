package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Persistence backend: "mongo" or "firebase".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`

	// Firebase configuration (used when STORE_BACKEND=firebase, and for FCM).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseDatabaseURL     string `mapstructure:"FIREBASE_DATABASE_URL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Admin access.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	AdminFCMToken     string `mapstructure:"ADMIN_FCM_TOKEN"`

	// Office hours policy. Times are "HH:MM"; Friday closes earlier.
	OfficeOpen          string `mapstructure:"OFFICE_OPEN"`
	OfficeClose         string `mapstructure:"OFFICE_CLOSE"`
	OfficeCloseFriday   string `mapstructure:"OFFICE_CLOSE_FRIDAY"`
	BreakStart          string `mapstructure:"BREAK_START"`
	BreakEnd            string `mapstructure:"BREAK_END"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	DefaultDurationMins int    `mapstructure:"DEFAULT_DURATION_MINUTES"`
	MaxDurationMins     int    `mapstructure:"MAX_DURATION_MINUTES"`

	// Booking session and reminder settings.
	SessionTTLMinutes   int `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
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
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("FIREBASE_DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("OFFICE_OPEN", "09:00")
	viper.SetDefault("OFFICE_CLOSE", "17:00")
	viper.SetDefault("OFFICE_CLOSE_FRIDAY", "14:30")
	viper.SetDefault("BREAK_START", "12:00")
	viper.SetDefault("BREAK_END", "13:00")
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 30)
	viper.SetDefault("MAX_DURATION_MINUTES", 240)
	viper.SetDefault("SESSION_TTL_MINUTES", 10)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

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
