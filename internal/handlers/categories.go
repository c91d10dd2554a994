// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/ViniciusMeireles/blog-api/internal/models"
	"github.com/ViniciusMeireles/blog-api/internal/store"
)

// Categories groups the category resource handlers.
type Categories struct {
	categories *store.CategoryStore
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *store.CategoryStore) *Categories {
	return &Categories{categories: categories}
}

// List returns all categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		respondStoreError(w, "list categories failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns a single category by id.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}

	c, err := h.categories.FindByID(id)
	if err != nil {
		respondStoreError(w, "find category failed", err)
		return
	}
	if c == nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Create inserts a new category from the request payload.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	c, err := h.categories.Create(&models.Category{Name: in.Name, Description: in.Description})
	if err != nil {
		respondStoreError(w, "create category failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// Update fully replaces a category's fields.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}

	var in categoryInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	c, err := h.categories.Update(&models.Category{ID: id, Name: in.Name, Description: in.Description})
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		respondStoreError(w, "update category failed", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Delete removes a category. Posts keep existing; only the assignment
// rows go away.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}

	err = h.categories.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		respondStoreError(w, "delete category failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
