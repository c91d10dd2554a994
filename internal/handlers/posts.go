// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ViniciusMeireles/blog-api/internal/middleware"
	"github.com/ViniciusMeireles/blog-api/internal/models"
	"github.com/ViniciusMeireles/blog-api/internal/store"
)

// Posts groups the post resource handlers, including the explicit
// category attach/detach operations.
type Posts struct {
	posts *store.PostStore
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts *store.PostStore) *Posts {
	return &Posts{posts: posts}
}

// List returns all posts with author, categories, and comments expanded.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.List()
	if err != nil {
		respondStoreError(w, "list posts failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns a single post by id, expanded.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}

	p, err := h.posts.FindByID(id)
	if err != nil {
		respondStoreError(w, "find post failed", err)
		return
	}
	if p == nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Create inserts a new post. The author is always the authenticated
// caller; any author value in the payload is discarded.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var in postInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	p, err := h.posts.Create(&models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		AuthorID:  sess.UserID,
	})
	if err != nil {
		respondStoreError(w, "create post failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// Update fully replaces a post's editable fields. Unlike Create, the
// payload's author is used as-is; the caller-identity override applies
// only on creation.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}

	var in postInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	fe := in.validate()
	var authorID uuid.UUID
	if in.Author == nil || *in.Author == "" {
		fe.add("author", "This field is required.")
	} else if authorID, err = uuid.Parse(*in.Author); err != nil {
		fe.add("author", "Must be a valid UUID.")
	}
	if len(fe) > 0 {
		fe.respond(w)
		return
	}

	p, err := h.posts.Update(&models.Post{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		AuthorID:  authorID,
	})
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		respondStoreError(w, "update post failed", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Delete removes a post and, through the storage cascade, its comments.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}

	err = h.posts.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		respondStoreError(w, "delete post failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AttachCategory adds a category to the post's category set. Categories
// are deliberately not writable through the post payload; this endpoint
// is the only API path that assigns them.
func (h *Posts) AttachCategory(w http.ResponseWriter, r *http.Request) {
	postID, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	categoryID, err := uuidParam(r, "categoryID")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}

	if err := h.posts.AttachCategory(postID, categoryID); err != nil {
		respondStoreError(w, "attach category failed", err)
		return
	}

	p, err := h.posts.FindByID(postID)
	if err != nil {
		respondStoreError(w, "reload post failed", err)
		return
	}
	if p == nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// DetachCategory removes a category from the post's category set.
func (h *Posts) DetachCategory(w http.ResponseWriter, r *http.Request) {
	postID, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "post not found")
		return
	}
	categoryID, err := uuidParam(r, "categoryID")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}

	err = h.posts.DetachCategory(postID, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "category not attached")
		return
	}
	if err != nil {
		respondStoreError(w, "detach category failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
