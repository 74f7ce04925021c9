package common

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Storage   StorageConfig
	Converter ConverterConfig
	LLM       LLMConfig
	WhatsApp  WhatsAppConfig
	Patient   PatientConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// StorageConfig holds object-storage configuration for uploaded media.
type StorageConfig struct {
	Bucket         string
	Region         string
	PublicBaseURL  string
	UploadPrefix   string
	RequestTimeout time.Duration
}

// ConverterConfig holds PDF rasterization service configuration.
type ConverterConfig struct {
	BaseURL string
	APIKey  string
}

// LLMConfig holds extraction-service configuration.
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// WhatsAppConfig holds messaging transport configuration.
type WhatsAppConfig struct {
	BaseURL       string
	PhoneNumberID string
	AccessToken   string
	VerifyToken   string
	SendTimeout   time.Duration
	DedupCapacity int
}

// PatientConfig scopes every pipeline and storage call to a patient.
// Single-tenant deployments set one ID and phone number here; a
// multi-tenant deployment resolves these from authentication instead.
type PatientConfig struct {
	ID    uuid.UUID
	Phone string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Bucket:         getEnv("MEDIA_BUCKET", ""),
			Region:         getEnv("AWS_REGION", "ap-south-1"),
			PublicBaseURL:  getEnv("MEDIA_PUBLIC_BASE_URL", ""),
			UploadPrefix:   getEnv("MEDIA_UPLOAD_PREFIX", "documents"),
			RequestTimeout: getEnvAsDuration("MEDIA_TIMEOUT", 30*time.Second),
		},
		Converter: ConverterConfig{
			BaseURL: getEnv("PDF_CONVERTER_URL", ""),
			APIKey:  getEnv("PDF_CONVERTER_API_KEY", ""),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 120*time.Second),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:       getEnv("WHATSAPP_BASE_URL", "https://graph.facebook.com/v19.0"),
			PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
			SendTimeout:   getEnvAsDuration("WHATSAPP_SEND_TIMEOUT", 8*time.Second),
			DedupCapacity: getEnvAsInt("WHATSAPP_DEDUP_CAPACITY", 256),
		},
		Patient: PatientConfig{
			ID:    getEnvAsUUID("PATIENT_ID"),
			Phone: getEnv("PATIENT_PHONE", ""),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrValidation)
	}
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "MEDIA_BUCKET is required", ErrValidation)
	}
	if c.WhatsApp.VerifyToken == "" {
		return NewAppError("CONFIG_ERROR", "WHATSAPP_VERIFY_TOKEN is required", ErrValidation)
	}
	if c.Patient.ID == uuid.Nil {
		return NewAppError("CONFIG_ERROR", "PATIENT_ID is required", ErrValidation)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsUUID(key string) uuid.UUID {
	if value := os.Getenv(key); value != "" {
		if id, err := uuid.Parse(value); err == nil {
			return id
		}
	}
	return uuid.Nil
}
