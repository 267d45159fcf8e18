// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a user remark attached to one article. Comments are created
// and deleted through the API but never updated.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
