// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database accessors for all newswire entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
// Accessors validate their inputs before any query executes and signal
// domain failures as *apierr.Error values; they never recover from
// infrastructure errors, which are wrapped and propagated as-is.
package store

import (
	"database/sql"
	"fmt"

	"newswire/internal/models"
)

// TopicStore handles all topic-related database operations.
type TopicStore struct {
	db *sql.DB
}

// NewTopicStore creates a new TopicStore with the given database connection.
func NewTopicStore(db *sql.DB) *TopicStore {
	return &TopicStore{db: db}
}

// List returns all topics ordered by slug.
func (s *TopicStore) List() ([]models.Topic, error) {
	rows, err := s.db.Query(`SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}
