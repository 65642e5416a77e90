// Package config provides environment-driven configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	app_errors "slack-translator/internal/errors"
	"slack-translator/internal/types"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for configuration
const (
	defaultPort            = 3000
	defaultHost            = "0.0.0.0"
	defaultEngine          = "google"
	defaultCacheTTLSeconds = 86400
	defaultNoticeLocale    = "en"
	defaultGoogleAPIURL    = "https://www.googleapis.com/language/translate/v2"
	defaultNaverAPIURL     = "http://translate.naver.com/translate.dic"
	defaultSlackAPIBaseURL = "https://slack.com/api"
	defaultBotName         = "translator"
)

// Manager implements types.ConfigManager backed by process environment.
type Manager struct {
	serverConfig    types.ServerConfig
	corsConfig      types.CORSConfig
	logConfig       types.LogConfig
	slackConfig     types.SlackConfig
	translateConfig types.TranslateConfig
	redisDSN        string
	asyncMode       bool
	noticeLocale    string
}

// NewManager creates a new configuration manager. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	m := &Manager{
		serverConfig: types.ServerConfig{
			Port:                    parseInteger(os.Getenv("PORT"), defaultPort),
			Host:                    getEnvOrDefault("HOST", defaultHost),
			ReadTimeout:             parseInteger(os.Getenv("SERVER_READ_TIMEOUT"), 60),
			WriteTimeout:            parseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), 120),
			IdleTimeout:             parseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), 120),
			GracefulShutdownTimeout: parseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), 10),
		},
		corsConfig: types.CORSConfig{
			Enabled:          parseBoolean(os.Getenv("ENABLE_CORS"), false),
			AllowedOrigins:   parseArray(os.Getenv("ALLOWED_ORIGINS"), []string{"*"}),
			AllowedMethods:   parseArray(os.Getenv("ALLOWED_METHODS"), []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders:   parseArray(os.Getenv("ALLOWED_HEADERS"), []string{"*"}),
			AllowCredentials: parseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
		},
		logConfig: types.LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: parseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
			FilePath:   getEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		slackConfig: types.SlackConfig{
			APIToken:   os.Getenv("SLACK_API_TOKEN"),
			WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
			APIBaseURL: getEnvOrDefault("SLACK_API_BASE_URL", defaultSlackAPIBaseURL),
			BotName:    getEnvOrDefault("SLACK_BOT_NAME", defaultBotName),
		},
		translateConfig: types.TranslateConfig{
			Engine:          getEnvOrDefault("TRANSLATE_ENGINE", defaultEngine),
			GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
			GoogleAPIURL:    getEnvOrDefault("GOOGLE_TRANSLATE_URL", defaultGoogleAPIURL),
			NaverAPIURL:     getEnvOrDefault("NAVER_TRANSLATE_URL", defaultNaverAPIURL),
			CacheTTLSeconds: parseInteger(os.Getenv("CACHE_TTL_SECONDS"), defaultCacheTTLSeconds),
		},
		redisDSN:     os.Getenv("REDIS_URL"),
		asyncMode:    strings.EqualFold(os.Getenv("ASYNC_TRANSLATION"), "YES"),
		noticeLocale: getEnvOrDefault("NOTICE_LOCALE", defaultNoticeLocale),
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks that the configuration is complete enough to serve
// traffic. Failures here are fatal at startup.
func (m *Manager) Validate() error {
	var validationErrors []string

	if m.serverConfig.Port < 1 || m.serverConfig.Port > 65535 {
		validationErrors = append(validationErrors, fmt.Sprintf("invalid port: %d", m.serverConfig.Port))
	}

	if m.slackConfig.WebhookURL == "" {
		validationErrors = append(validationErrors, "SLACK_WEBHOOK_URL is required")
	}
	if m.slackConfig.APIToken == "" {
		validationErrors = append(validationErrors, "SLACK_API_TOKEN is required")
	}

	switch m.translateConfig.Engine {
	case "google":
		if m.translateConfig.GoogleAPIKey == "" {
			validationErrors = append(validationErrors, "GOOGLE_API_KEY is required for the google engine")
		}
	case "naver":
		// The naver endpoint carries no credential.
	default:
		// Unknown names are rejected again by the engine registry; report
		// early with the same wording for a single startup diagnostic.
		validationErrors = append(validationErrors,
			fmt.Sprintf("TRANSLATE_ENGINE: there is no '%s' translate engine", m.translateConfig.Engine))
	}

	if m.translateConfig.CacheTTLSeconds < 0 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid CACHE_TTL_SECONDS: %d", m.translateConfig.CacheTTLSeconds))
	}

	if len(validationErrors) > 0 {
		return app_errors.NewConfigurationError(strings.Join(validationErrors, "; "))
	}

	return nil
}

// GetEffectiveServerConfig returns the server configuration
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.serverConfig
}

// GetCORSConfig returns the CORS configuration
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.corsConfig
}

// GetLogConfig returns the logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.logConfig
}

// GetRedisDSN returns the Redis connection string. Empty means the
// in-process memory store is used instead.
func (m *Manager) GetRedisDSN() string {
	return m.redisDSN
}

// GetSlackConfig returns the Slack collaborator configuration
func (m *Manager) GetSlackConfig() types.SlackConfig {
	return m.slackConfig
}

// GetTranslateConfig returns the translation engine configuration
func (m *Manager) GetTranslateConfig() types.TranslateConfig {
	return m.translateConfig
}

// IsAsyncTranslation reports whether translate-and-send work is deferred
// to the background worker instead of running within the request.
func (m *Manager) IsAsyncTranslation() bool {
	return m.asyncMode
}

// GetNoticeLocale returns the locale used for channel notices.
func (m *Manager) GetNoticeLocale() string {
	return m.noticeLocale
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	logrus.Info("")
	logrus.Info("======= Server Configuration =======")
	logrus.Infof("  Listen: %s:%d", m.serverConfig.Host, m.serverConfig.Port)
	logrus.Infof("  Translate engine: %s", m.translateConfig.Engine)
	logrus.Infof("  Cache TTL: %ds", m.translateConfig.CacheTTLSeconds)
	if m.redisDSN != "" {
		logrus.Info("  Store: redis")
	} else {
		logrus.Info("  Store: memory (single-node mode)")
	}
	if m.asyncMode {
		logrus.Info("  Translation: deferred (background worker)")
	} else {
		logrus.Info("  Translation: synchronous")
	}
	logrus.Infof("  Notice locale: %s", m.noticeLocale)
	logrus.Info("====================================")
	logrus.Info("")
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseArray(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
