// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"newswire/internal/apierr"
	"newswire/internal/models"
)

// validSortColumns is the closed allow-list for the listing ORDER BY column.
// Sort identifiers cannot be bound parameters in SQL, so membership in this
// set is the security boundary: only a validated member is ever interpolated
// into the query text.
var validSortColumns = map[string]bool{
	"author":          true,
	"title":           true,
	"article_id":      true,
	"topic":           true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
}

// ArticleStore handles all article-related database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// GetByID retrieves one article by its id, including the derived
// comment_count ("0" when the article has no comments). The id arrives as
// the raw path segment; a non-integer string is rejected before any query
// runs. Returns a 404 failure when no article matches.
func (s *ArticleStore) GetByID(articleID string) (*models.Article, error) {
	id, err := strconv.Atoi(articleID)
	if err != nil {
		return nil, apierr.BadRequest("article_id must be a number")
	}

	a := &models.Article{}
	err = s.db.QueryRow(`
		SELECT a.article_id, a.title, a.topic, a.author, a.body,
		       a.created_at, a.votes, a.article_img_url,
		       COUNT(c.comment_id)::text AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, apierr.NotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("get article by id: %w", err)
	}
	return a, nil
}

// List returns article summaries (no body) with derived comment counts.
// sortBy defaults to created_at and must be a member of validSortColumns;
// order defaults to DESC and accepts ASC/DESC case-insensitively. A nil
// topic means no filter; a present topic must be non-empty and is matched
// exactly as a bound parameter. All validation happens before the query
// executes. Ties on the sort column break by article_id descending so a
// fixed dataset always lists in the same order.
func (s *ArticleStore) List(sortBy, order string, topic *string) ([]models.ArticleSummary, error) {
	if order == "" {
		order = "DESC"
	}
	order = strings.ToUpper(order)
	if order != "ASC" && order != "DESC" {
		return nil, apierr.BadRequest("Invalid order")
	}

	if sortBy == "" {
		sortBy = "created_at"
	}
	if !validSortColumns[sortBy] {
		return nil, apierr.BadRequest("Invalid sort_by")
	}

	query := `
		SELECT a.author, a.title, a.article_id, a.topic, a.created_at,
		       a.votes, a.article_img_url,
		       COUNT(c.comment_id)::text AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id`

	args := []any{}
	if topic != nil {
		if *topic == "" {
			return nil, apierr.BadRequest("topic cannot be an empty string")
		}
		query += ` WHERE a.topic = $1`
		args = append(args, *topic)
	}

	// sortBy and order passed the allow-list checks above; nothing else is
	// ever interpolated into the query text.
	query += ` GROUP BY a.article_id`
	query += fmt.Sprintf(` ORDER BY a.%s %s, a.article_id DESC`, sortBy, order)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// AdjustVotes applies a vote delta as a single conditional update, so the
// read-modify-write race of checking the current count first cannot drive
// votes negative. Callers confirm the article exists beforehand; when the
// update matches no row the delta would have taken votes below zero and
// the stored value is unchanged.
func (s *ArticleStore) AdjustVotes(articleID, delta int) (*models.Article, error) {
	a := &models.Article{}
	err := s.db.QueryRow(`
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2 AND votes + $1 >= 0
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`, delta, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err == sql.ErrNoRows {
		return nil, apierr.BadRequest("An article can not have less than zero votes")
	}
	if err != nil {
		return nil, fmt.Errorf("adjust article votes: %w", err)
	}

	var count int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	a.CommentCount = strconv.Itoa(count)

	return a, nil
}
