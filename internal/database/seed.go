package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a handful of
// topics, users, articles, and comments so the API has something to serve.
// It is a no-op when any topics already exist.
func Seed(db *sql.DB) error {
	// Check if the database is already seeded.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM topics").Scan(&count); err != nil {
		return fmt.Errorf("seed check topics: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	topics := []struct{ slug, description string }{
		{"coding", "Code is love, code is life"},
		{"football", "FOOTIE!"},
		{"cooking", "Hey good looking, what you got cooking?"},
	}
	for _, t := range topics {
		if _, err := db.Exec(
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.slug, t.description,
		); err != nil {
			return fmt.Errorf("seed insert topic: %w", err)
		}
	}

	users := []struct{ username, name, avatarURL string }{
		{"tickle122", "Tom Tickle", "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png"},
		{"grumpy19", "Paul Grump", "https://vignette.wikia.nocookie.net/mrmen/images/7/78/Mr-Grumpy-3A.PNG"},
		{"happyamy2016", "Amy Happy", "https://vignette1.wikia.nocookie.net/mrmen/images/7/7f/Mr_Happy.jpg"},
		{"weegembump", "Gemma Bump", "https://vignette.wikia.nocookie.net/mrmen/images/7/7e/MrMen-Bump.png"},
	}
	for _, u := range users {
		if _, err := db.Exec(
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.username, u.name, u.avatarURL,
		); err != nil {
			return fmt.Errorf("seed insert user: %w", err)
		}
	}

	articles := []struct {
		title, topic, author, body string
		votes                      int
	}{
		{"Running a Node App", "coding", "tickle122", "This is part two of a series on how to get up and running with Systemd and Node.js.", 0},
		{"The Rise Of Thinking Machines", "coding", "grumpy19", "Many people know Watson as the IBM-developed cognitive super computer that won Jeopardy! in 2011.", 12},
		{"Sunday league football is the best football", "football", "weegembump", "Astroturf, shin pads, and a referee who has somewhere better to be.", 100},
		{"Seafood substitutions are increasing", "cooking", "happyamy2016", "SEAFOOD fraud is a serious global problem, according to a new report.", 4},
	}
	for _, a := range articles {
		if _, err := db.Exec(
			`INSERT INTO articles (title, topic, author, body, votes) VALUES ($1, $2, $3, $4, $5)`,
			a.title, a.topic, a.author, a.body, a.votes,
		); err != nil {
			return fmt.Errorf("seed insert article: %w", err)
		}
	}

	comments := []struct {
		body, author string
		articleID    int
		votes        int
	}{
		{"Systemd is a solved problem, fight me.", "grumpy19", 1, 3},
		{"Great write-up, got my app running in an afternoon.", "weegembump", 1, 7},
		{"Watson would never have won without the buzzer advantage.", "tickle122", 2, -1},
		{"The referee has never been somewhere better to be.", "happyamy2016", 3, 10},
		{"Half the cod in this country is not cod.", "grumpy19", 4, 2},
	}
	for _, c := range comments {
		if _, err := db.Exec(
			`INSERT INTO comments (body, author, article_id, votes) VALUES ($1, $2, $3, $4)`,
			c.body, c.author, c.articleID, c.votes,
		); err != nil {
			return fmt.Errorf("seed insert comment: %w", err)
		}
	}

	slog.Info("database seeded with development data",
		"topics", len(topics),
		"users", len(users),
		"articles", len(articles),
		"comments", len(comments),
	)

	return nil
}
