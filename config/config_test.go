package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "API_PROXY_HOST", "REACT_APP_PROXY_HOST",
		"DEV_PROXY_ENABLED", "ANALYTICS_BASE_URL", "ANALYTICS_TIMEOUT", "FRONTEND_URL", "CHART_WIDTH", "CHART_HEIGHT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
	if !cfg.DevProxyEnabled {
		t.Error("DevProxyEnabled = false, want true outside production")
	}
	if cfg.ProxyHost != "" {
		t.Errorf("ProxyHost = %q, want empty", cfg.ProxyHost)
	}
	if cfg.AnalyticsBaseURL != "http://127.0.0.1:8080" {
		t.Errorf("AnalyticsBaseURL = %q", cfg.AnalyticsBaseURL)
	}
	if cfg.AnalyticsTimeout != 10*time.Second {
		t.Errorf("AnalyticsTimeout = %v, want 10s", cfg.AnalyticsTimeout)
	}
	if cfg.ChartWidth != 500 || cfg.ChartHeight != 300 {
		t.Errorf("chart size = %dx%d, want 500x300", cfg.ChartWidth, cfg.ChartHeight)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("API_PROXY_HOST", "")
	t.Setenv("REACT_APP_PROXY_HOST", "http://legacy:5000")
	t.Setenv("DEV_PROXY_ENABLED", "")
	t.Setenv("ANALYTICS_BASE_URL", "")
	t.Setenv("ANALYTICS_TIMEOUT", "not-a-duration")
	t.Setenv("CHART_WIDTH", "-3")
	t.Setenv("CHART_HEIGHT", "420")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.DevProxyEnabled {
		t.Error("DevProxyEnabled = true, want false in production")
	}
	if cfg.ProxyHost != "http://legacy:5000" {
		t.Errorf("ProxyHost = %q, want legacy fallback", cfg.ProxyHost)
	}
	if cfg.AnalyticsBaseURL != "http://127.0.0.1:9090" {
		t.Errorf("AnalyticsBaseURL = %q", cfg.AnalyticsBaseURL)
	}
	if cfg.AnalyticsTimeout != 10*time.Second {
		t.Errorf("AnalyticsTimeout = %v, want fallback 10s", cfg.AnalyticsTimeout)
	}
	if cfg.ChartWidth != 500 {
		t.Errorf("ChartWidth = %d, want default for invalid value", cfg.ChartWidth)
	}
	if cfg.ChartHeight != 420 {
		t.Errorf("ChartHeight = %d, want 420", cfg.ChartHeight)
	}
}

func TestLoad_ExplicitProxyToggle(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEV_PROXY_ENABLED", "true")
	t.Setenv("API_PROXY_HOST", "http://api:4000")

	cfg := Load()

	if !cfg.DevProxyEnabled {
		t.Error("DevProxyEnabled = false, want explicit true")
	}
	if cfg.ProxyHost != "http://api:4000" {
		t.Errorf("ProxyHost = %q", cfg.ProxyHost)
	}
}
