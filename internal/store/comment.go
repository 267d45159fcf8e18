// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"newswire/internal/apierr"
	"newswire/internal/models"
)

// CommentStore handles all comment-related database operations.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore with the given database connection.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

// ListByArticle returns all comments on an article, newest first. An
// article with no comments yields an empty slice, not an error — callers
// confirm the article itself exists before asking for its comments.
func (s *CommentStore) ListByArticle(articleID int) ([]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT comment_id, body, author, article_id, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Create inserts a comment on an article and returns it with the
// server-assigned id, timestamp, and default vote count. Both fields must
// be present in the request body; username is checked first when both are
// absent. An empty string is present — only a missing field is rejected.
func (s *CommentStore) Create(articleID int, username, body *string) (*models.Comment, error) {
	if username == nil {
		return nil, apierr.BadRequest("username is required")
	}
	if body == nil {
		return nil, apierr.BadRequest("body is required")
	}

	c := &models.Comment{}
	err := s.db.QueryRow(`
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, body, author, article_id, votes, created_at
	`, *body, *username, articleID).Scan(
		&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// Delete removes a comment by id. The id arrives as the raw path segment;
// a non-integer string is rejected before any query runs. Deleting an
// absent comment is a 404.
func (s *CommentStore) Delete(commentID string) error {
	id, err := strconv.Atoi(commentID)
	if err != nil {
		return apierr.BadRequest("comment_id must be a number")
	}

	res, err := s.db.Exec(`DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment rows affected: %w", err)
	}
	if affected == 0 {
		return apierr.NotFound()
	}
	return nil
}
