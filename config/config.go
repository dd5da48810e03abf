package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Dev proxy: /api/* is forwarded to ProxyHost
	ProxyHost       string
	DevProxyEnabled bool

	AnalyticsBaseURL string
	AnalyticsTimeout time.Duration

	FrontendURL string
	ChartWidth  int
	ChartHeight int
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appEnv := strings.ToLower(getEnv("APP_ENV", "development"))
	port := getEnv("PORT", "8080")
	timeout, err := time.ParseDuration(getEnv("ANALYTICS_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	return &Config{
		Port:             port,
		AppEnv:           appEnv,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ProxyHost:        getEnv("API_PROXY_HOST", os.Getenv("REACT_APP_PROXY_HOST")),
		DevProxyEnabled:  getEnvBool("DEV_PROXY_ENABLED", appEnv != "production"),
		AnalyticsBaseURL: getEnv("ANALYTICS_BASE_URL", "http://127.0.0.1:"+port),
		AnalyticsTimeout: timeout,
		FrontendURL:      getEnv("FRONTEND_URL", "*"),
		ChartWidth:       getEnvInt("CHART_WIDTH", 500),
		ChartHeight:      getEnvInt("CHART_HEIGHT", 300),
	}
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
