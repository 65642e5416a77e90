package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetCORSConfig() CORSConfig
	GetLogConfig() LogConfig
	GetEffectiveServerConfig() ServerConfig
	GetRedisDSN() string
	GetSlackConfig() SlackConfig
	GetTranslateConfig() TranslateConfig
	IsAsyncTranslation() bool
	GetNoticeLocale() string
	Validate() error
	DisplayServerConfig()
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port                    int    `json:"port"`
	Host                    string `json:"host"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// SlackConfig represents the Slack collaborator endpoints and credentials.
type SlackConfig struct {
	APIToken   string `json:"-"`
	WebhookURL string `json:"webhook_url"`
	APIBaseURL string `json:"api_base_url"`
	BotName    string `json:"bot_name"`
}

// TranslateConfig represents the translation engine selection and vendor
// credentials. The engine name is resolved against the engine registry once
// at startup.
type TranslateConfig struct {
	Engine          string `json:"engine"`
	GoogleAPIKey    string `json:"-"`
	GoogleAPIURL    string `json:"google_api_url"`
	NaverAPIURL     string `json:"naver_api_url"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds"`
}

// UserProfile is an immutable snapshot of a Slack user's display identity.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// ChannelModeConfig is the per-channel meeting mode configuration. At most
// one active configuration exists per channel; it is replaced only by a
// full stop/start cycle.
type ChannelModeConfig struct {
	ChannelID        string `json:"channel_id"`
	InitiatingUserID string `json:"user_id"`
	LanguageA        string `json:"language_a"`
	LanguageB        string `json:"language_b"`
}
