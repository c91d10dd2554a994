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

// PostStore manages posts and their category assignments.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, published, author_id, created_at, updated_at`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	err := scanner.Scan(&p.ID, &p.Title, &p.Content, &p.Published, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first, with author, categories, and
// comments expanded.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	items := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		if err := s.expand(&items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// FindByID retrieves a post by ID with its relations expanded.
// Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	if err := s.expand(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and returns it expanded. A missing author
// yields a *ConstraintError.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	row := s.db.QueryRow(`
		INSERT INTO posts (title, content, published, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+postColumns,
		p.Title, p.Content, p.Published, p.AuthorID,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, wrapConstraint("create post", err)
	}
	if err := s.expand(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces a post's title, content, published flag, and author,
// and returns the updated row expanded.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	row := s.db.QueryRow(`
		UPDATE posts SET title = $1, content = $2, published = $3, author_id = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+postColumns,
		p.Title, p.Content, p.Published, p.AuthorID, p.ID,
	)
	result, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapConstraint("update post", err)
	}
	if err := s.expand(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a post by ID. Its comments and category assignments are
// removed with it (ON DELETE CASCADE).
func (s *PostStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachCategory adds a category to a post's category set. Attaching an
// already-attached pair is a no-op. A nonexistent post or category yields
// a *ConstraintError.
func (s *PostStore) AttachCategory(postID, categoryID uuid.UUID) error {
	_, err := s.db.Exec(`
		INSERT INTO post_categories (post_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, category_id) DO NOTHING
	`, postID, categoryID)
	if err != nil {
		return wrapConstraint("attach category", err)
	}
	return nil
}

// DetachCategory removes a category from a post's category set.
// Returns ErrNotFound if the pair was not attached.
func (s *PostStore) DetachCategory(postID, categoryID uuid.UUID) error {
	res, err := s.db.Exec(`
		DELETE FROM post_categories WHERE post_id = $1 AND category_id = $2
	`, postID, categoryID)
	if err != nil {
		return fmt.Errorf("detach category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored posts.
func (s *PostStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// expand populates the virtual Author, Categories, and Comments fields.
func (s *PostStore) expand(p *models.Post) error {
	var a models.UserSummary
	err := s.db.QueryRow(`
		SELECT id, username, email, first_name, last_name FROM users WHERE id = $1
	`, p.AuthorID).Scan(&a.ID, &a.Username, &a.Email, &a.FirstName, &a.LastName)
	if err != nil {
		return fmt.Errorf("expand post author: %w", err)
	}
	p.Author = &a

	catRows, err := s.db.Query(`
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at
		FROM categories c
		JOIN post_categories pc ON pc.category_id = c.id
		WHERE pc.post_id = $1
		ORDER BY c.name
	`, p.ID)
	if err != nil {
		return fmt.Errorf("expand post categories: %w", err)
	}
	defer catRows.Close()

	p.Categories = []models.Category{}
	for catRows.Next() {
		c, err := scanCategory(catRows)
		if err != nil {
			return fmt.Errorf("scan post category: %w", err)
		}
		p.Categories = append(p.Categories, *c)
	}
	if err := catRows.Err(); err != nil {
		return err
	}

	comRows, err := s.db.Query(`
		SELECT `+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY created_at
	`, p.ID)
	if err != nil {
		return fmt.Errorf("expand post comments: %w", err)
	}
	defer comRows.Close()

	p.Comments = []models.Comment{}
	for comRows.Next() {
		c, err := scanComment(comRows)
		if err != nil {
			return fmt.Errorf("scan post comment: %w", err)
		}
		p.Comments = append(p.Comments, *c)
	}
	return comRows.Err()
}
