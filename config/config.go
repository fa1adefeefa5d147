package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Registry storage
	Redis RedisConfig

	// Upstreams
	LLM LLMConfig
	TTS TTSConfig

	// Conversation behavior
	Chat ChatConfig

	// Webhooks
	Webhook WebhookConfig

	// Admin API
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type TTSConfig struct {
	APIKey  string
	Voice   string
	BaseURL string
}

type ChatConfig struct {
	// PublicBaseURL is the externally reachable base of this service, used
	// to build webhook and audio URLs handed to tenants and users.
	PublicBaseURL      string
	TranscribeLanguage string
	SpeechLanguage     string
}

type WebhookConfig struct {
	RateLimitPerMin int
}

type AdminConfig struct {
	Key string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first so env overrides work
// in local development too.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Registry storage
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// LLM upstream
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	if llmKey := viper.GetString("llm_api_key"); llmKey != "" {
		cfg.LLM.APIKey = llmKey
	}

	// TTS upstream
	cfg.TTS.APIKey = viper.GetString("tts.api_key")
	cfg.TTS.Voice = viper.GetString("tts.voice")
	cfg.TTS.BaseURL = viper.GetString("tts.base_url")
	if ttsKey := viper.GetString("tts_api_key"); ttsKey != "" {
		cfg.TTS.APIKey = ttsKey
	}

	// Conversation behavior
	cfg.Chat.PublicBaseURL = viper.GetString("chat.public_base_url")
	cfg.Chat.TranscribeLanguage = viper.GetString("chat.transcribe_language")
	cfg.Chat.SpeechLanguage = viper.GetString("chat.speech_language")
	if baseURL := viper.GetString("public_base_url"); baseURL != "" {
		cfg.Chat.PublicBaseURL = baseURL
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Admin API
	cfg.Admin.Key = viper.GetString("admin.key")
	if adminKey := viper.GetString("admin_key"); adminKey != "" {
		cfg.Admin.Key = adminKey
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("chat.public_base_url", "http://localhost:8080")
	viper.SetDefault("chat.transcribe_language", "en")
	viper.SetDefault("chat.speech_language", "en-US")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}

func validate(cfg *Config) error {
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set LLM_API_KEY)")
	}
	if cfg.Chat.PublicBaseURL == "" {
		return fmt.Errorf("chat.public_base_url is required")
	}
	return nil
}
