package domain

import "fmt"

// Story represents a single Hacker News story, captured as a snapshot at
// fetch time. Score and comment counts are not updated after storage.
type Story struct {
	// ID is the story's immutable Hacker News item id.
	ID int

	// Title is the submission title.
	Title string

	// URL is the linked article. Empty for self posts.
	URL string

	// Score is the story's point count at fetch time.
	Score int

	// Comments is the comment count at fetch time.
	Comments int

	// Published is the submission time in epoch seconds.
	Published int64
}

// Permalink returns the story's discussion page on Hacker News. It is
// derived from the id and never persisted.
func (s Story) Permalink() string {
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%d", s.ID)
}

// CompositeScore is the key used to order stories within a digest.
func (s Story) CompositeScore() int {
	return s.Score + s.Comments
}
