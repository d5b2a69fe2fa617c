package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contiene la configuración de la aplicación leída del entorno.
type Config struct {
	ServerPort  string
	CORSOrigins string

	// Almacén de datos externo (API REST estilo json-server)
	StoreBaseURL string
	StoreTimeout time.Duration

	// Redis para sesiones
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	// SMTP para emails de confirmación
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// S3 para imágenes de habitaciones
	S3Bucket string
	S3Region string

	LogLevel  string
	LogFormat string

	// Tarifas de pensión por huésped y noche (sobreescribibles por entorno)
	PensionDesayuno     float64
	PensionMedia        float64
	PensionCompleta     float64
	PensionTodoIncluido float64
	CacheTTL            time.Duration
}

// LoadConfig carga la configuración desde variables de entorno, leyendo
// primero un fichero .env si existe.
func LoadConfig() (*Config, error) {
	// .env es opcional: en despliegue las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:8100"),

		StoreBaseURL: os.Getenv("STORE_BASE_URL"),
		StoreTimeout: getEnvDuration("STORE_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionTTL:    getEnvDuration("SESSION_TTL", 12*time.Hour),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Hotel Admin"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		S3Bucket: os.Getenv("S3_BUCKET"),
		S3Region: getEnv("S3_REGION", "eu-west-1"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		PensionDesayuno:     getEnvFloat("PENSION_DESAYUNO", 8),
		PensionMedia:        getEnvFloat("PENSION_MEDIA", 18),
		PensionCompleta:     getEnvFloat("PENSION_COMPLETA", 30),
		PensionTodoIncluido: getEnvFloat("PENSION_TODO_INCLUIDO", 50),
		CacheTTL:            getEnvDuration("CACHE_TTL", 30*time.Second),
	}

	if cfg.StoreBaseURL == "" {
		return nil, fmt.Errorf("STORE_BASE_URL es requerido")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
