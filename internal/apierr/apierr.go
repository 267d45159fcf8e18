// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apierr defines the typed failures stores and handlers communicate
// with. Every domain failure carries the HTTP status it must surface as and
// the exact client-facing message; anything that is not an *apierr.Error is
// treated as an internal fault at the boundary.
package apierr

import "net/http"

// Error is a request failure with a fixed HTTP status and client message.
type Error struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Msg
}

// BadRequest returns a 400 failure for malformed or out-of-policy input.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound returns a 404 failure for an absent entity. The message is
// always "Not found" — callers do not customize it.
func NotFound() *Error {
	return &Error{Status: http.StatusNotFound, Msg: "Not found"}
}
