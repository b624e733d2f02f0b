package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type SearchProvider string

const (
	SearchSerpAPI SearchProvider = "serpapi"
	SearchGoogle  SearchProvider = "google"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"llama-3.1-8b-instant"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Search settings
	SearchProvider SearchProvider `env:"SEARCH_PROVIDER" envDefault:"serpapi"`
	SerpAPIKey     string         `env:"SERPAPI_API_KEY"`
	GoogleCSEKey   string         `env:"GOOGLE_CSE_KEY"`
	GoogleCSEID    string         `env:"GOOGLE_CSE_ID"`

	// Retrieval settings
	TrustedDomains  []string      `env:"TRUSTED_DOMAINS" envSeparator:":"`
	ResultLimit     int           `env:"RESULT_LIMIT" envDefault:"5"`
	PageCharLimit   int           `env:"PAGE_CHAR_LIMIT" envDefault:"2000"`
	PromptCharLimit int           `env:"PROMPT_CHAR_LIMIT" envDefault:"10000"`
	FallbackTimeout time.Duration `env:"FALLBACK_TIMEOUT" envDefault:"15s"`

	// Conversation settings
	HistoryWindow  int           `env:"HISTORY_WINDOW" envDefault:"6"`
	SessionMaxIdle time.Duration `env:"SESSION_MAX_IDLE" envDefault:"30m"`

	// HTTP server
	Port int `env:"PORT" envDefault:"8000"`

	// Telegram frontend
	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN"`
	AllowedUsers     []int64 `env:"ALLOWED_USERS" envSeparator:":"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/turns.jsonl"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// Validate checks that credentials for the selected providers are present.
// Missing credentials are fatal at startup, not a per-request error.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.LLMProvider)
		}
	case ProviderYandex:
		if c.YandexOAuthToken == "" || c.YandexFolderID == "" {
			return fmt.Errorf("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID are required for provider %q", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown llm provider: %s", c.LLMProvider)
	}

	switch c.SearchProvider {
	case SearchSerpAPI:
		if c.SerpAPIKey == "" {
			return fmt.Errorf("SERPAPI_API_KEY is required for search provider %q", c.SearchProvider)
		}
	case SearchGoogle:
		if c.GoogleCSEKey == "" || c.GoogleCSEID == "" {
			return fmt.Errorf("GOOGLE_CSE_KEY and GOOGLE_CSE_ID are required for search provider %q", c.SearchProvider)
		}
	default:
		return fmt.Errorf("unknown search provider: %s", c.SearchProvider)
	}
	return nil
}
