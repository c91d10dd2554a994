// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ViniciusMeireles/blog-api/internal/models"
)

func TestCommentCreate_Returns201(t *testing.T) {
	env := newTestEnv(t)
	caller := env.makeUser(t, uniqueName("comment-author"))
	p := env.makePost(t, caller, "Commented")

	body := `{"post": "` + p.ID.String() + `", "content": "Test comment 1", "author": "` + caller.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
	req = req.WithContext(ctxWithSession(req.Context(), caller))

	rec := httptest.NewRecorder()
	env.Comments.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Create: got status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var got models.Comment
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.PostID != p.ID || got.AuthorID != caller.ID {
		t.Errorf("references: got post=%s author=%s", got.PostID, got.AuthorID)
	}
}

// Referencing a post that does not exist must surface the integrity
// failure, not succeed silently.
func TestCommentCreate_UnknownPost_Returns400(t *testing.T) {
	env := newTestEnv(t)
	caller := env.makeUser(t, uniqueName("comment-orphan"))

	before, err := env.commentStore.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	body := `{"post": "` + uuid.New().String() + `", "content": "ghost", "author": "` + caller.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
	req = req.WithContext(ctxWithSession(req.Context(), caller))

	rec := httptest.NewRecorder()
	env.Comments.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Create unknown post: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	after, err := env.commentStore.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if after != before {
		t.Errorf("count changed on failed create: got %d, want %d", after, before)
	}
}

func TestCommentCreate_AllViolationsReported(t *testing.T) {
	env := newTestEnv(t)
	caller := env.makeUser(t, uniqueName("comment-invalid"))

	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(`{"author": "not-a-uuid"}`))
	req = req.WithContext(ctxWithSession(req.Context(), caller))

	rec := httptest.NewRecorder()
	env.Comments.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Create invalid: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var fe map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&fe); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, field := range []string{"content", "post", "author"} {
		if len(fe[field]) == 0 {
			t.Errorf("expected a violation for %s, got %v", field, fe)
		}
	}
}

func TestCommentUpdate_ReplacesFields(t *testing.T) {
	env := newTestEnv(t)
	caller := env.makeUser(t, uniqueName("comment-updater"))
	p := env.makePost(t, caller, "Commented")

	c, err := env.commentStore.Create(&models.Comment{PostID: p.ID, Content: "Test comment 1", AuthorID: caller.ID})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	body := `{"post": "` + p.ID.String() + `", "content": "Test comment 2", "author": "` + caller.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPut, "/comments/"+c.ID.String(), strings.NewReader(body))
	req = withURLParams(req, map[string]string{"id": c.ID.String()})
	req = req.WithContext(ctxWithSession(req.Context(), caller))

	rec := httptest.NewRecorder()
	env.Comments.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Update: got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var got models.Comment
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Content != "Test comment 2" {
		t.Errorf("content: got %q, want %q", got.Content, "Test comment 2")
	}
}

func TestCommentDelete_Returns204(t *testing.T) {
	env := newTestEnv(t)
	caller := env.makeUser(t, uniqueName("comment-deleter"))
	p := env.makePost(t, caller, "Commented")

	c, err := env.commentStore.Create(&models.Comment{PostID: p.ID, Content: "bye", AuthorID: caller.ID})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/comments/"+c.ID.String(), nil)
	req = withURLParams(req, map[string]string{"id": c.ID.String()})
	req = req.WithContext(ctxWithSession(req.Context(), caller))

	rec := httptest.NewRecorder()
	env.Comments.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Delete: got status %d, want %d", rec.Code, http.StatusNoContent)
	}
}
