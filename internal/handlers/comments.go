// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ViniciusMeireles/blog-api/internal/models"
	"github.com/ViniciusMeireles/blog-api/internal/store"
)

// Comments groups the comment resource handlers. Comments carry their
// post and author references as bare identifiers on the wire.
type Comments struct {
	comments *store.CommentStore
}

// NewComments creates a new Comments handler group.
func NewComments(comments *store.CommentStore) *Comments {
	return &Comments{comments: comments}
}

// List returns all comments.
func (h *Comments) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.comments.List()
	if err != nil {
		respondStoreError(w, "list comments failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns a single comment by id.
func (h *Comments) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}

	c, err := h.comments.FindByID(id)
	if err != nil {
		respondStoreError(w, "find comment failed", err)
		return
	}
	if c == nil {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Create inserts a new comment. A payload referencing a nonexistent post
// or author fails on the foreign-key constraint, never silently.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	var in commentInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	c, err := h.comments.Create(&models.Comment{
		PostID:   uuid.MustParse(in.Post),
		Content:  in.Content,
		AuthorID: uuid.MustParse(in.Author),
	})
	if err != nil {
		respondStoreError(w, "create comment failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// Update fully replaces a comment's fields.
func (h *Comments) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}

	var in commentInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	c, err := h.comments.Update(&models.Comment{
		ID:       id,
		PostID:   uuid.MustParse(in.Post),
		Content:  in.Content,
		AuthorID: uuid.MustParse(in.Author),
	})
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}
	if err != nil {
		respondStoreError(w, "update comment failed", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Delete removes a comment.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}

	err = h.comments.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "comment not found")
		return
	}
	if err != nil {
		respondStoreError(w, "delete comment failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
