// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request identifier to the backend so client
// log lines can be matched with server logs.
const RequestIDHeader = "X-Request-ID"

// RequestIDs stamps outgoing REST requests and push handshakes with
// time-ordered identifiers.
type RequestIDs struct {
	newV7 func() (uuid.UUID, error)
}

func NewRequestIDs() *RequestIDs {
	return &RequestIDs{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, or a random UUIDv4 when the clock source fails.
func (g *RequestIDs) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Stamp sets [RequestIDHeader] on h unless the caller already chose one and
// returns the id in effect.
func (g *RequestIDs) Stamp(h http.Header) string {
	if id := h.Get(RequestIDHeader); id != "" {
		return id
	}
	id := g.Generate()
	h.Set(RequestIDHeader, id)
	return id
}
