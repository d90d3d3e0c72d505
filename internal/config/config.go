package config

import (
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	DriverMySQL = "mysql"
	DriverJSON  = "json"
)

// Config carries every runtime setting. It is built once in main and
// passed by reference to whatever needs it, there are no package globals.
type Config struct {
	Port string

	// Persistence
	DatabaseDSN   string
	StorageDriver string // mysql | json (patients only, doctors stay relational)
	DataFile      string // flat-file path for the json driver

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Mail (patient-created notification)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// Load reads the environment (call godotenv.Load first) and fills defaults.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:root@tcp(127.0.0.1:3306)/clinic?charset=utf8mb4&parseTime=True&loc=Local"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMySQL),
		DataFile:      getEnv("DATA_FILE", "data/patients.json"),
		JWTSecret:     getEnv("JWT_SECRET", "clinic_dev_secret"),
		TokenTTL:      30 * time.Minute,
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
	}

	if minutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 0); minutes > 0 {
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}
	return cfg
}

// ConnectDB opens the relational database from the configured DSN.
func (c *Config) ConnectDB() (*gorm.DB, error) {
	return gorm.Open(mysql.Open(c.DatabaseDSN), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}
