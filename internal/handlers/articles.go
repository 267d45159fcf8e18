// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"newswire/internal/apierr"
	"newswire/internal/cache"
	"newswire/internal/models"
)

// Articles groups handlers for the article endpoints. The listing cache
// may be nil, in which case every request goes to the database.
type Articles struct {
	store    ArticleStore
	listings *cache.ListingCache
}

// NewArticles creates a new Articles handler group.
func NewArticles(store ArticleStore, listings *cache.ListingCache) *Articles {
	return &Articles{store: store, listings: listings}
}

type articleResponse struct {
	Article *models.Article `json:"article"`
}

type articlesResponse struct {
	Articles []models.ArticleSummary `json:"articles"`
}

// Get handles GET /api/articles/{article_id}.
func (h *Articles) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.store.GetByID(chi.URLParam(r, "article_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, articleResponse{Article: article})
}

// List handles GET /api/articles?sort_by&order&topic. The cache key is
// derived from the normalized parameters, but only valid listings are ever
// stored — an invalid combination always misses and is then rejected by
// the accessor before any query runs.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy := q.Get("sort_by")
	order := q.Get("order")

	var topic *string
	if q.Has("topic") {
		v := q.Get("topic")
		topic = &v
	}

	key := listingKey(sortBy, order, topic)
	if h.listings != nil {
		if body, ok := h.listings.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}
	}

	articles, err := h.store.List(sortBy, order, topic)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if h.listings != nil {
		if body, err := json.Marshal(articlesResponse{Articles: articles}); err == nil {
			h.listings.Set(r.Context(), key, body)
		}
	}

	respondJSON(w, r, http.StatusOK, articlesResponse{Articles: articles})
}

// AdjustVotes handles PATCH /api/articles/{article_id} {inc_votes}. The
// body is validated first, then the article's existence (so a missing
// article is a 404, not a silent no-op), then the atomic vote update.
func (h *Articles) AdjustVotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := render.DecodeJSON(r.Body, &body); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, apierr.BadRequest("inc_votes must be a number"))
		return
	}
	if body.IncVotes == nil {
		respondError(w, r, apierr.BadRequest("inc_votes is required"))
		return
	}

	article, err := h.store.GetByID(chi.URLParam(r, "article_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.store.AdjustVotes(article.ArticleID, *body.IncVotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// Votes appear in listings — drop every cached one.
	if h.listings != nil {
		h.listings.InvalidateAll(r.Context())
	}

	respondJSON(w, r, http.StatusOK, articleResponse{Article: updated})
}

// listingKey mirrors the accessor's parameter defaulting so equivalent
// requests share a cache entry. It does no validity checking.
func listingKey(sortBy, order string, topic *string) string {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "DESC"
	}
	return cache.Key(sortBy, strings.ToUpper(order), topic)
}
