package domain

import (
	"context"
	"time"
)

// StoryStore defines persistence operations for seen stories.
type StoryStore interface {
	// FilterKnown reports which of the given ids are already stored.
	// Duplicate input ids are collapsed; an empty input yields an empty
	// result.
	FilterKnown(ctx context.Context, ids []int) (map[int]bool, error)

	// CreateStory inserts a new story. The id is unique at the storage
	// layer, so inserting an id that already exists is an error.
	CreateStory(ctx context.Context, story *Story) error
}

// Feed fetches the current top stories from the aggregator API.
type Feed interface {
	// TopStoryIDs returns the provider-ranked list of current top story ids.
	TopStoryIDs(ctx context.Context) ([]int, error)

	// Stories fetches detail records for the given ids, skipping ids that
	// fail to fetch or are not stories. Input order is preserved.
	Stories(ctx context.Context, ids []int) []Story
}

// Renderer turns an ordered list of stories into a digest document.
type Renderer interface {
	Render(stories []Story, date time.Time) (string, error)
}

// Notifier delivers a rendered digest to the configured recipient.
type Notifier interface {
	Send(ctx context.Context, html string) error
}
