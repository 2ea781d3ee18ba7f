// Package config 提供配置管理
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	App     AppConfig     `json:"app"`
	API     APIConfig     `json:"api"`
	Solver  SolverConfig  `json:"solver"`
	Metrics MetricsConfig `json:"metrics"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name      string `json:"name"`
	Env       string `json:"env"`
	Port      int    `json:"port"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// APIConfig API配置
type APIConfig struct {
	RateLimit   float64       `json:"rate_limit"`
	Timeout     time.Duration `json:"timeout"`
	CORSEnabled bool          `json:"cors_enabled"`
}

// SolverConfig 求解引擎配置
type SolverConfig struct {
	Workers          int           `json:"workers"`
	DefaultTimeLimit time.Duration `json:"default_time_limit"`
}

// MetricsConfig 监控配置
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// Load 从环境变量加载配置；存在.env文件时先行读入
func Load() (*Config, error) {
	// .env不存在不算错误
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:      getEnv("APP_NAME", "coreplanx"),
			Env:       getEnv("APP_ENV", "development"),
			Port:      getEnvInt("APP_PORT", 8090),
			LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
			LogFormat: getEnv("APP_LOG_FORMAT", "console"),
		},
		API: APIConfig{
			RateLimit:   getEnvFloat("API_RATE_LIMIT", 100),
			Timeout:     getEnvDuration("API_TIMEOUT", 30*time.Second),
			CORSEnabled: getEnvBool("API_CORS_ENABLED", true),
		},
		Solver: SolverConfig{
			Workers:          getEnvInt("SOLVER_WORKERS", 4),
			DefaultTimeLimit: getEnvDuration("SOLVER_TIME_LIMIT", 30*time.Second),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}

	return cfg, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
