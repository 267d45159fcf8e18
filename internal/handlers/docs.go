// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// endpointDoc describes one route for the self-documenting /api endpoint.
type endpointDoc struct {
	Description     string         `json:"description"`
	Queries         []string       `json:"queries"`
	ExampleResponse map[string]any `json:"exampleResponse"`
}

// endpoints is static documentation data keyed by "METHOD /path".
var endpoints = map[string]endpointDoc{
	"GET /api": {
		Description:     "serves up a json representation of all the available endpoints of the api",
		Queries:         []string{},
		ExampleResponse: map[string]any{},
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"topics": []map[string]any{
				{"slug": "football", "description": "FOOTIE!"},
			},
		},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles",
		Queries:     []string{"sort_by", "order", "topic"},
		ExampleResponse: map[string]any{
			"articles": []map[string]any{
				{
					"article_id":      1,
					"title":           "Seafood substitutions are increasing",
					"topic":           "cooking",
					"author":          "weegembump",
					"created_at":      "2018-05-30T15:59:13.341Z",
					"votes":           0,
					"article_img_url": "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg",
					"comment_count":   "6",
				},
			},
		},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment count",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"article": map[string]any{
				"article_id":    1,
				"title":         "Seafood substitutions are increasing",
				"topic":         "cooking",
				"author":        "weegembump",
				"body":          "Text from the article..",
				"created_at":    "2018-05-30T15:59:13.341Z",
				"votes":         0,
				"comment_count": "6",
			},
		},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves all comments on an article, newest first",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"comments": []map[string]any{
				{
					"comment_id": 1,
					"body":       "Great article!",
					"author":     "tickle122",
					"article_id": 1,
					"votes":      3,
					"created_at": "2018-05-30T15:59:13.341Z",
				},
			},
		},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article and serves the created comment",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"comment": map[string]any{
				"comment_id": 19,
				"body":       "Great article!",
				"author":     "tickle122",
				"article_id": 1,
				"votes":      0,
				"created_at": "2018-05-30T15:59:13.341Z",
			},
		},
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts an article's votes by inc_votes and serves the updated article",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"article": map[string]any{
				"article_id": 1,
				"votes":      110,
			},
		},
	},
	"DELETE /api/comments/:comment_id": {
		Description:     "deletes a comment, responding with no content",
		Queries:         []string{},
		ExampleResponse: map[string]any{},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"users": []map[string]any{
				{
					"username":   "tickle122",
					"name":       "Tom Tickle",
					"avatar_url": "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png",
				},
			},
		},
	},
}

// Docs serves the static endpoint documentation.
type Docs struct{}

// NewDocs creates a new Docs handler group.
func NewDocs() *Docs {
	return &Docs{}
}

// Endpoints handles GET /api.
func (h *Docs) Endpoints(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, endpoints)
}
