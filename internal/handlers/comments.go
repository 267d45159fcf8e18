// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"newswire/internal/apierr"
	"newswire/internal/cache"
	"newswire/internal/models"
)

// Comments groups handlers for the comment endpoints. Comment routes hang
// off articles, so the group also needs the article accessor: there is no
// database-level guarantee standing in for the existence check, it is an
// explicit two-step orchestration here.
type Comments struct {
	store    CommentStore
	articles ArticleStore
	listings *cache.ListingCache
}

// NewComments creates a new Comments handler group.
func NewComments(store CommentStore, articles ArticleStore, listings *cache.ListingCache) *Comments {
	return &Comments{store: store, articles: articles, listings: listings}
}

type commentResponse struct {
	Comment *models.Comment `json:"comment"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// ListForArticle handles GET /api/articles/{article_id}/comments. The
// article is fetched first so a nonexistent article yields a 404 rather
// than a silently empty list.
func (h *Comments) ListForArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetByID(chi.URLParam(r, "article_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	comments, err := h.store.ListByArticle(article.ArticleID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, commentsResponse{Comments: comments})
}

// Create handles POST /api/articles/{article_id}/comments {username, body}.
// Field presence is enforced by the accessor; an absent request body reads
// the same as a body with both fields missing.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetByID(chi.URLParam(r, "article_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	var body struct {
		Username *string `json:"username"`
		Body     *string `json:"body"`
	}
	if err := render.DecodeJSON(r.Body, &body); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, apierr.BadRequest("Invalid request body"))
		return
	}

	comment, err := h.store.Create(article.ArticleID, body.Username, body.Body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// A new comment changes the article's comment_count in listings.
	if h.listings != nil {
		h.listings.InvalidateAll(r.Context())
	}

	respondJSON(w, r, http.StatusCreated, commentResponse{Comment: comment})
}

// Delete handles DELETE /api/comments/{comment_id}. Success is a bare 204.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "comment_id")); err != nil {
		respondError(w, r, err)
		return
	}

	if h.listings != nil {
		h.listings.InvalidateAll(r.Context())
	}

	w.WriteHeader(http.StatusNoContent)
}
