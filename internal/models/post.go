// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post. The author reference is mandatory; the
// category set is many-to-many and unordered.
//
// On read, Author, Categories, and Comments are expanded in place. On write
// only title, content, and published are client-settable; the author is
// assigned from the caller identity at creation and categories are managed
// through the attach/detach endpoints.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Virtual fields populated by store methods.
	Author     *UserSummary `json:"author"`
	Categories []Category   `json:"categories"`
	Comments   []Comment    `json:"comments"`
}
