// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ViniciusMeireles/blog-api/internal/database"
	"github.com/ViniciusMeireles/blog-api/internal/middleware"
	"github.com/ViniciusMeireles/blog-api/internal/models"
	"github.com/ViniciusMeireles/blog-api/internal/session"
	"github.com/ViniciusMeireles/blog-api/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blog")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blog")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Users      *store.UserStore
	Categories *Categories
	Posts      *Posts
	Comments   *Comments

	categoryStore *store.CategoryStore
	postStore     *store.PostStore
	commentStore  *store.CommentStore
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	categoryStore := store.NewCategoryStore(db)
	postStore := store.NewPostStore(db)
	commentStore := store.NewCommentStore(db)

	return &testEnv{
		DB:            db,
		Users:         store.NewUserStore(db),
		Categories:    NewCategories(categoryStore),
		Posts:         NewPosts(postStore),
		Comments:      NewComments(commentStore),
		categoryStore: categoryStore,
		postStore:     postStore,
		commentStore:  commentStore,
	}
}

// makeUser creates a throwaway user and registers cleanup. Posts and
// comments owned by the user cascade on cleanup.
func (env *testEnv) makeUser(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := env.Users.Create(username, username+"@test.local", "Test", "User", "secret")
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM users WHERE username = $1", username) })
	return u
}

// makeCategory creates a throwaway category and registers cleanup.
func (env *testEnv) makeCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := env.categoryStore.Create(&models.Category{Name: name})
	if err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM categories WHERE name = $1", name) })
	return c
}

// makePost creates a throwaway post through the store, bypassing the API.
func (env *testEnv) makePost(t *testing.T, author *models.User, title string) *models.Post {
	t.Helper()
	p, err := env.postStore.Create(&models.Post{Title: title, Content: "body", AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return p
}

// ctxWithSession injects a verified session for the given user, the way
// LoadSession would after a successful login.
func ctxWithSession(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, &session.Data{
		UserID:    u.ID,
		Username:  u.Username,
		TwoFADone: true,
	})
}

// withURLParams attaches chi route parameters to the request, standing in
// for the router during direct handler calls.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// uniqueName returns a collision-free name with the given prefix.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
