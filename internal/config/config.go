package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultModel   = "openai/gpt-oss-120b:cerebras"
	DefaultBaseURL = "https://router.huggingface.co/v1"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Completion API
	HFToken string
	Model   string
	BaseURL string
	// Static frontend; the entry file is FrontendDir/index.html and images
	// are served from FrontendDir/img.
	FrontendDir string
	// Optional YAML prompt override; empty means the embedded prompts.
	PromptsFile  string
	MaxBodyBytes int64
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:          getEnvDefault("PORT", "8000"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		HFToken:       os.Getenv("HF_TOKEN"),
		Model:         getEnvDefault("MODEL", DefaultModel),
		BaseURL:       getEnvDefault("HF_BASE_URL", DefaultBaseURL),
		FrontendDir:   getEnvDefault("FRONTEND_DIR", "frontend"),
		PromptsFile:   os.Getenv("PROMPTS_FILE"),
		MaxBodyBytes:  getEnvInt64Default("MAX_BODY_BYTES", 1<<20),
	}
	if cfg.HFToken == "" {
		log.Println("warning: HF_TOKEN is not set; completion calls will fail authentication until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt64Default(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("warning: ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
