// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go provides stub stores and request helpers shared by the
// handler tests. Handlers depend on store interfaces, so everything here
// runs without PostgreSQL or Valkey.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"newswire/internal/models"
)

// stubArticleStore implements ArticleStore with pluggable behavior.
type stubArticleStore struct {
	getByID     func(articleID string) (*models.Article, error)
	list        func(sortBy, order string, topic *string) ([]models.ArticleSummary, error)
	adjustVotes func(articleID, delta int) (*models.Article, error)
}

func (s *stubArticleStore) GetByID(articleID string) (*models.Article, error) {
	return s.getByID(articleID)
}

func (s *stubArticleStore) List(sortBy, order string, topic *string) ([]models.ArticleSummary, error) {
	return s.list(sortBy, order, topic)
}

func (s *stubArticleStore) AdjustVotes(articleID, delta int) (*models.Article, error) {
	return s.adjustVotes(articleID, delta)
}

// stubCommentStore implements CommentStore with pluggable behavior.
type stubCommentStore struct {
	listByArticle func(articleID int) ([]models.Comment, error)
	create        func(articleID int, username, body *string) (*models.Comment, error)
	delete        func(commentID string) error
}

func (s *stubCommentStore) ListByArticle(articleID int) ([]models.Comment, error) {
	return s.listByArticle(articleID)
}

func (s *stubCommentStore) Create(articleID int, username, body *string) (*models.Comment, error) {
	return s.create(articleID, username, body)
}

func (s *stubCommentStore) Delete(commentID string) error {
	return s.delete(commentID)
}

// stubTopicStore implements TopicStore.
type stubTopicStore struct {
	list func() ([]models.Topic, error)
}

func (s *stubTopicStore) List() ([]models.Topic, error) {
	return s.list()
}

// stubUserStore implements UserStore.
type stubUserStore struct {
	list func() ([]models.User, error)
}

func (s *stubUserStore) List() ([]models.User, error) {
	return s.list()
}

// testArticle returns a fixed article record for stub responses.
func testArticle() *models.Article {
	return &models.Article{
		ArticleID:     1,
		Title:         "Running a Node App",
		Topic:         "coding",
		Author:        "tickle122",
		Body:          "This is part two of a series.",
		CreatedAt:     time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
		Votes:         100,
		ArticleImgURL: "https://example.com/img.png",
		CommentCount:  "11",
	}
}

// serve mounts a handler on a fresh chi router so URL parameters resolve,
// performs the request, and returns the recorder.
func serve(t *testing.T, method, pattern, target string, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// wantMsg asserts the response carries the given status and error message.
func wantMsg(t *testing.T, rr *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if rr.Code != status {
		t.Errorf("status: got %d, want %d", rr.Code, status)
	}
	var body msgResponse
	decodeBody(t, rr, &body)
	if body.Msg != msg {
		t.Errorf("msg: got %q, want %q", body.Msg, msg)
	}
}
