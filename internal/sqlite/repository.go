package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/senko/hndaily/internal/domain"
	_ "modernc.org/sqlite"
)

// Repository implements domain.StoryStore using a single-table sqlite
// database.
type Repository struct {
	db *sql.DB
}

// NewRepository opens the sqlite database at the given path, creating the
// file and schema if needed. The caller should call Close when the
// repository is no longer needed.
func NewRepository(path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &Repository{db: db}
	if err := r.init(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS stories (
			id        INTEGER UNIQUE,
			title     TEXT,
			url       TEXT,
			score     INTEGER,
			comments  INTEGER,
			published INTEGER
		)`)
	if err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// FilterKnown reports which of the given ids already exist in the stories
// table. Duplicate input ids are collapsed before the query, and an empty
// input returns an empty result without touching the database.
func (r *Repository) FilterKnown(ctx context.Context, ids []int) (map[int]bool, error) {
	unique := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	known := make(map[int]bool)
	if len(unique) == 0 {
		return known, nil
	}

	placeholders := make([]string, len(unique))
	args := make([]any, len(unique))
	for i, id := range unique {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM stories WHERE id IN ("+strings.Join(placeholders, ",")+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query known stories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan story id: %w", err)
		}
		known[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate known stories: %w", err)
	}

	return known, nil
}

// CreateStory inserts a new story. The id column is declared UNIQUE, so
// inserting an id that already exists returns an error and leaves the
// existing row untouched.
func (r *Repository) CreateStory(ctx context.Context, story *domain.Story) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stories (id, title, url, score, comments, published)
		VALUES (?, ?, ?, ?, ?, ?)`,
		story.ID,
		story.Title,
		story.URL,
		story.Score,
		story.Comments,
		story.Published,
	)
	return err
}

// GetStory retrieves a single stored story by id. Returns nil if the id is
// not stored.
func (r *Repository) GetStory(ctx context.Context, id int) (*domain.Story, error) {
	var s domain.Story
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, url, score, comments, published
		FROM stories
		WHERE id = ?`, id,
	).Scan(&s.ID, &s.Title, &s.URL, &s.Score, &s.Comments, &s.Published)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query story %d: %w", id, err)
	}
	return &s, nil
}
