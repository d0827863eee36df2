package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/senko/hndaily/internal/domain"
)

// progressInterval controls how often batch fetch progress is logged.
const progressInterval = 10

// Client is a minimal Hacker News API client for fetching the top-story list
// and individual story details.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Hacker News API client rooted at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// TopStoryIDs returns the provider-ranked list of current top story ids.
func (c *Client) TopStoryIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := c.get(ctx, "/topstories.json", &ids); err != nil {
		return nil, fmt.Errorf("fetch top stories: %w", err)
	}
	return ids, nil
}

// item is the raw item payload from the API.
type item struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
}

// Story fetches a single item by id. It returns (nil, nil) when the item
// exists but is not a story: comments, jobs and polls share the id space and
// are excluded from digests.
func (c *Client) Story(ctx context.Context, id int) (*domain.Story, error) {
	var it item
	if err := c.get(ctx, fmt.Sprintf("/item/%d.json", id), &it); err != nil {
		return nil, fmt.Errorf("fetch item %d: %w", id, err)
	}

	if it.Type != "story" {
		return nil, nil
	}

	return &domain.Story{
		ID:        it.ID,
		Title:     it.Title,
		URL:       it.URL,
		Score:     it.Score,
		Comments:  it.Descendants,
		Published: it.Time,
	}, nil
}

// Stories fetches detail records for the given ids, one request at a time.
// Ids that fail to fetch are logged and skipped; non-story items are dropped
// silently. The returned slice preserves input order.
func (c *Client) Stories(ctx context.Context, ids []int) []domain.Story {
	stories := make([]domain.Story, 0, len(ids))
	for i, id := range ids {
		if i%progressInterval == 0 {
			c.logger.Info("fetching stories", "current", i+1, "total", len(ids))
		}

		story, err := c.Story(ctx, id)
		if err != nil {
			c.logger.Warn("failed to fetch story", "id", id, "error", err)
			continue
		}
		if story == nil {
			continue
		}
		stories = append(stories, *story)
	}
	return stories
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
