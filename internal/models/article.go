// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Article is a published piece under a topic. Articles are seed-only for
// creation; the only mutation the API allows is a vote delta, and the
// stored vote count never goes negative.
//
// CommentCount is derived per request by an aggregation join and is not
// stored. It is serialized as a string-typed decimal ("0" when the article
// has no comments) — a compatibility quirk of the public contract.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  string    `json:"comment_count"`
}

// ArticleSummary is the listing shape for articles: everything Article
// carries except the body.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  string    `json:"comment_count"`
}
