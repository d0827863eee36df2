package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DigestService is the core domain service. It owns the business logic for a
// single digest run: fetch the top-story list, drop already seen ids, fetch
// and persist the new stories, and mail the ranked digest.
type DigestService struct {
	store    StoryStore
	feed     Feed
	renderer Renderer
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewDigestService creates a DigestService wired to the given collaborators.
func NewDigestService(store StoryStore, feed Feed, renderer Renderer, notifier Notifier, logger *slog.Logger) *DigestService {
	return &DigestService{
		store:    store,
		feed:     feed,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one digest pass. A failed top-story fetch degrades to an
// empty run, per-story fetch failures are skipped inside the feed, and a
// rejected mail delivery is logged; the run still completes in all of those
// cases. Storage failures abort the run: the store declares story ids
// unique, so an insert conflict means the dedup filter is broken.
func (s *DigestService) Run(ctx context.Context) error {
	topIDs, err := s.feed.TopStoryIDs(ctx)
	if err != nil {
		s.logger.Error("failed to fetch top stories", "error", err)
		topIDs = nil
	}

	known, err := s.store.FilterKnown(ctx, topIDs)
	if err != nil {
		return fmt.Errorf("filter known stories: %w", err)
	}

	// Keep the provider's ordering, collapsing any duplicate ids.
	newIDs := make([]int, 0, len(topIDs))
	picked := make(map[int]bool, len(topIDs))
	for _, id := range topIDs {
		if known[id] || picked[id] {
			continue
		}
		picked[id] = true
		newIDs = append(newIDs, id)
	}

	stories := s.feed.Stories(ctx, newIDs)

	for i := range stories {
		if err := s.store.CreateStory(ctx, &stories[i]); err != nil {
			return fmt.Errorf("store story %d: %w", stories[i].ID, err)
		}
	}

	s.logger.Info("digest run complete",
		"top", len(topIDs),
		"known", len(known),
		"stored", len(stories),
	)

	if len(stories) == 0 {
		return nil
	}

	top := Rank(stories, TopStories)

	doc, err := s.renderer.Render(top, s.now())
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	if err := s.notifier.Send(ctx, doc); err != nil {
		s.logger.Error("failed to send digest", "error", err)
	}
	return nil
}
