// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"newswire/internal/apierr"
)

// msgResponse is the body shape for every non-2xx response.
type msgResponse struct {
	Msg string `json:"msg"`
}

// respondJSON writes v as JSON with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// respondError is the process-wide failure normalizer. Typed failures map
// to their carried status and message verbatim; everything else is logged
// and surfaces as an opaque 500 so internal details never reach clients.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		respondJSON(w, r, apiErr.Status, msgResponse{Msg: apiErr.Msg})
		return
	}

	slog.Error("unhandled error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	respondJSON(w, r, http.StatusInternalServerError, msgResponse{Msg: "Internal server error"})
}

// RouteNotFound answers any request that matched no route. Disallowed
// methods on known paths get the same answer — the surface is a strict
// route table, not per-path method negotiation.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusNotFound, msgResponse{Msg: "Route not found"})
}
