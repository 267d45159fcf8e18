// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"newswire/internal/models"
)

// Users groups handlers for the user endpoints.
type Users struct {
	store UserStore
}

// NewUsers creates a new Users handler group.
func NewUsers(store UserStore) *Users {
	return &Users{store: store}
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

// List handles GET /api/users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, usersResponse{Users: users})
}
