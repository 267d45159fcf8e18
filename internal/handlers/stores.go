// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers adapts HTTP requests into accessor calls and accessor
// results into JSON responses. Handler groups receive their store
// dependencies as interfaces so tests can run against stubs without a
// live database.
package handlers

import "newswire/internal/models"

// ArticleStore is the accessor surface the article handlers depend on.
type ArticleStore interface {
	GetByID(articleID string) (*models.Article, error)
	List(sortBy, order string, topic *string) ([]models.ArticleSummary, error)
	AdjustVotes(articleID, delta int) (*models.Article, error)
}

// CommentStore is the accessor surface the comment handlers depend on.
type CommentStore interface {
	ListByArticle(articleID int) ([]models.Comment, error)
	Create(articleID int, username, body *string) (*models.Comment, error)
	Delete(commentID string) error
}

// TopicStore is the accessor surface the topic handlers depend on.
type TopicStore interface {
	List() ([]models.Topic, error)
}

// UserStore is the accessor surface the user handlers depend on.
type UserStore interface {
	List() ([]models.User, error)
}
