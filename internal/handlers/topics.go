// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"newswire/internal/models"
)

// Topics groups handlers for the topic endpoints.
type Topics struct {
	store TopicStore
}

// NewTopics creates a new Topics handler group.
func NewTopics(store TopicStore) *Topics {
	return &Topics{store: store}
}

type topicsResponse struct {
	Topics []models.Topic `json:"topics"`
}

// List handles GET /api/topics.
func (h *Topics) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, topicsResponse{Topics: topics})
}
