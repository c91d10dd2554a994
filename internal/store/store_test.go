// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ViniciusMeireles/blog-api/internal/database"
	"github.com/ViniciusMeireles/blog-api/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing, from
// environment variables with local-development defaults.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blog")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blog")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state for other packages.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanUsers removes test users by username. Posts and comments cascade.
// Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		db.Exec("DELETE FROM users WHERE username = $1", username)
	}
}

// cleanCategories removes test categories by name. Call in t.Cleanup().
func cleanCategories(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM categories WHERE name = $1", name)
	}
}

// makeUser creates a throwaway user and registers cleanup.
func makeUser(t *testing.T, db *sql.DB, username string) *models.User {
	t.Helper()
	users := NewUserStore(db)
	u, err := users.Create(username, username+"@test.local", "Test", "User", "secret")
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	t.Cleanup(func() { cleanUsers(t, db, username) })
	return u
}

// makeCategory creates a throwaway category and registers cleanup.
func makeCategory(t *testing.T, db *sql.DB, name string) *models.Category {
	t.Helper()
	categories := NewCategoryStore(db)
	desc := "test category"
	c, err := categories.Create(&models.Category{Name: name, Description: &desc})
	if err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	t.Cleanup(func() { cleanCategories(t, db, name) })
	return c
}

// makePost creates a throwaway post owned by the given user. Cleanup rides
// on the user cascade.
func makePost(t *testing.T, db *sql.DB, author *models.User, title string) *models.Post {
	t.Helper()
	posts := NewPostStore(db)
	p, err := posts.Create(&models.Post{
		Title:    title,
		Content:  "test content",
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return p
}
