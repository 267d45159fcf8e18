// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the plain record types for the newswire domain.
// Entities are rows in PostgreSQL; they carry no behavior beyond JSON shape.
package models

// Topic is a discussion category. Topics are seed-only — the API exposes
// no write path for them.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
