package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	NewsroomBaseURL string
	HTTPTimeout     time.Duration

	CronSpec string

	SearchQuery string
	SearchLang  string // ko / en / ja

	PressPages  int
	SocialPages int

	TopKeywords int
}

func Load() *Config {
	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "9000"),
		NewsroomBaseURL: getEnv("NEWSROOM_BASE_URL", "https://www.hanwha.co.kr"),
		HTTPTimeout:     getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		CronSpec:        getEnv("CRON_SPEC", "*/30 * * * *"),
		SearchQuery:     getEnv("SEARCH_QUERY", "한화"),
		SearchLang:      getEnv("SEARCH_LANG", "ko"),
		PressPages:      getEnvInt("PRESS_PAGES", 1),
		SocialPages:     getEnvInt("SOCIAL_PAGES", 1),
		TopKeywords:     getEnvInt("TOP_KEYWORDS", 20),
	}

	log.Printf("config loaded: port=%s cron=%s query=%q lang=%s", cfg.AppPort, cfg.CronSpec, cfg.SearchQuery, cfg.SearchLang)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("config: invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: invalid %s=%q, using %s", key, v, def)
	}
	return def
}
