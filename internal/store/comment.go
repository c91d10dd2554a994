// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ViniciusMeireles/blog-api/internal/models"
)

// CommentStore manages comments in the database.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, post_id, content, author_id, created_at, updated_at`

// scanComment scans a row into a Comment struct.
func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	c := &models.Comment{}
	err := scanner.Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all comments, oldest first.
func (s *CommentStore) List() ([]models.Comment, error) {
	rows, err := s.db.Query(`SELECT ` + commentColumns + ` FROM comments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	items := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a comment by ID. Returns nil if not found.
func (s *CommentStore) FindByID(id uuid.UUID) (*models.Comment, error) {
	row := s.db.QueryRow(`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

// Create inserts a new comment and returns it. A nonexistent post or
// author yields a *ConstraintError.
func (s *CommentStore) Create(c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRow(`
		INSERT INTO comments (post_id, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		c.PostID, c.Content, c.AuthorID,
	)
	result, err := scanComment(row)
	if err != nil {
		return nil, wrapConstraint("create comment", err)
	}
	return result, nil
}

// Update replaces a comment's post, content, and author, and returns the
// updated row.
func (s *CommentStore) Update(c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRow(`
		UPDATE comments SET post_id = $1, content = $2, author_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+commentColumns,
		c.PostID, c.Content, c.AuthorID, c.ID,
	)
	result, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapConstraint("update comment", err)
	}
	return result, nil
}

// Delete removes a comment by ID.
func (s *CommentStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored comments.
func (s *CommentStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
