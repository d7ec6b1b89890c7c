package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpire   int
	FrontendURL string

	// Google sign-in
	GoogleClientID string

	// Firebase / Cloud Storage (private bucket holding item images)
	FirebaseCredentialsFile string
	StorageBucket           string

	// AI gateway used for image analysis
	AIGatewayURL      string
	AIGatewayKey      string
	AIModel           string
	AllowedImageHosts []string

	// SendGrid (password reset mail)
	SendGridAPIKey string
	MailFromEmail  string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "campusfound"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpire:   getEnvInt("JWT_EXPIRE_HOURS", 24),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		FirebaseCredentialsFile: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "serviceAccountKey.json"),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),

		AIGatewayURL:      getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey:      getEnv("AI_GATEWAY_KEY", ""),
		AIModel:           getEnv("AI_MODEL", "google/gemini-2.5-flash"),
		AllowedImageHosts: getEnvList("ALLOWED_IMAGE_HOSTS", "storage.googleapis.com"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFromEmail:  getEnv("MAIL_FROM_EMAIL", "noreply@campusfound.app"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
