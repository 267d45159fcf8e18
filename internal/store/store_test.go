// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"newswire/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "newswire")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "newswire")
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

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// uniqueSlug returns a short randomized identifier for test fixtures.
func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// seedTopic inserts a topic and removes it when the test finishes.
func seedTopic(t *testing.T, db *sql.DB) string {
	t.Helper()
	slug := uniqueSlug("test-topic")
	if _, err := db.Exec(
		`INSERT INTO topics (slug, description) VALUES ($1, $2)`, slug, "test topic",
	); err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM topics WHERE slug = $1`, slug) })
	return slug
}

// seedUser inserts a user and removes it when the test finishes.
func seedUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	username := uniqueSlug("test-user")
	if _, err := db.Exec(
		`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
		username, "Test User", "https://example.com/avatar.png",
	); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM users WHERE username = $1`, username) })
	return username
}

// seedArticle inserts an article with the given votes and returns its id.
// The row (and its comments, via cascade) is removed on cleanup.
func seedArticle(t *testing.T, db *sql.DB, topic, author string, votes int) int {
	t.Helper()
	var id int
	if err := db.QueryRow(`
		INSERT INTO articles (title, topic, author, body, votes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id
	`, "Test Article", topic, author, "test body", votes).Scan(&id); err != nil {
		t.Fatalf("seed article: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM articles WHERE article_id = $1`, id) })
	return id
}

// seedComment inserts a comment with an explicit created_at so ordering
// tests are deterministic, and returns its id.
func seedComment(t *testing.T, db *sql.DB, articleID int, author string, createdAt time.Time) int {
	t.Helper()
	var id int
	if err := db.QueryRow(`
		INSERT INTO comments (body, author, article_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`, "test comment", author, articleID, createdAt).Scan(&id); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return id
}
