package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const defaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// Config holds all configuration for a digest run.
type Config struct {
	// BaseURL is the Hacker News API root. The topstories and item
	// endpoints are appended to it.
	BaseURL string

	// DBPath is the sqlite file holding previously seen stories.
	DBPath string

	// SendgridAPIKey authenticates against the SendGrid mail send API.
	SendgridAPIKey string

	// FromEmail is the digest sender address.
	FromEmail string

	// RecipientEmail is the digest recipient address.
	RecipientEmail string
}

// Load reads configuration from environment variables. The mail settings are
// required; the API root and database path fall back to sensible defaults.
func Load() (*Config, error) {
	baseURL := os.Getenv("HN_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(xdg.DataHome, "hndaily", "stories.db")
	}

	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required")
	}

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		return nil, fmt.Errorf("FROM_EMAIL is required")
	}

	recipientEmail := os.Getenv("RECIPIENT_EMAIL")
	if recipientEmail == "" {
		return nil, fmt.Errorf("RECIPIENT_EMAIL is required")
	}

	return &Config{
		BaseURL:        baseURL,
		DBPath:         dbPath,
		SendgridAPIKey: apiKey,
		FromEmail:      fromEmail,
		RecipientEmail: recipientEmail,
	}, nil
}
