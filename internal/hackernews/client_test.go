package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTopStoryIDs(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topstories.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]int{8863, 121003, 192327})
	}))

	ids, err := client.TopStoryIDs(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, []int{8863, 121003, 192327}, ids)
}

func TestTopStoryIDsServerError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))

	ids, err := client.TopStoryIDs(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(ids))
}

func TestStory(t *testing.T) {
	payload := map[string]interface{}{
		"id":          8863,
		"type":        "story",
		"title":       "My YC app: Dropbox - Throw away your USB drive",
		"url":         "http://www.getdropbox.com/u/2/screencast.html",
		"score":       111,
		"descendants": 71,
		"time":        1175714200,
		"by":          "dhouston",
	}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/8863.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))

	story, err := client.Story(context.Background(), 8863)

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, story)
	assert.Equal(t, 8863, story.ID)
	assert.Equal(t, "My YC app: Dropbox - Throw away your USB drive", story.Title)
	assert.Equal(t, "http://www.getdropbox.com/u/2/screencast.html", story.URL)
	assert.Equal(t, 111, story.Score)
	assert.Equal(t, 71, story.Comments)
	assert.Equal(t, int64(1175714200), story.Published)
}

func TestStoryMissingURL(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    121003,
			"type":  "story",
			"title": "Ask HN: The Arc Effect",
			"score": 25,
			"time":  1203647620,
		})
	}))

	story, err := client.Story(context.Background(), 121003)

	assert.Equal(t, nil, err)
	assert.Equal(t, "", story.URL)
}

func TestStoryNonStoryExcluded(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   192327,
			"type": "job",
			"text": "Justin.tv is looking for a Lead Flash Engineer!",
		})
	}))

	story, err := client.Story(context.Background(), 192327)

	assert.Equal(t, nil, err)
	if story != nil {
		t.Errorf("expected non-story item to be excluded, got %+v", story)
	}
}

func TestStories(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/item/1.json":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 1, "type": "story", "title": "First", "score": 10, "descendants": 2,
			})
		case "/item/2.json":
			http.Error(w, "not found", http.StatusNotFound)
		case "/item/3.json":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 3, "type": "comment", "text": "nice",
			})
		case "/item/4.json":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 4, "type": "story", "title": "Fourth", "score": 5,
			})
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
		}
	}))

	stories := client.Stories(context.Background(), []int{1, 2, 3, 4})

	// The failed fetch and the comment are skipped; order is preserved.
	assert.Equal(t, 2, len(stories))
	assert.Equal(t, 1, stories[0].ID)
	assert.Equal(t, 4, stories[1].ID)
}

func TestStoriesEmptyInput(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL.Path)
	}))

	stories := client.Stories(context.Background(), nil)

	assert.Equal(t, 0, len(stories))
}

func TestStoryDeletedItem(t *testing.T) {
	// The API returns a literal null body for deleted or dangling ids.
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "null")
	}))

	story, err := client.Story(context.Background(), 77)

	assert.Equal(t, nil, err)
	if story != nil {
		t.Errorf("expected deleted item to be excluded, got %+v", story)
	}
}
