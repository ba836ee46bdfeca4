// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [InspectToken] when the credential is not a JWT
// (for example an opaque API key).
var ErrNotJWT = errors.New("token is not a JWT")

// TokenInfo holds the claims of a bearer token that the dashboard cares
// about. The signature is never verified on the client.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that lies before now.
// Tokens without an "exp" claim never expire.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// InspectToken parses tokenString without verifying its signature and
// extracts the subject and expiry.
//
// Returns [ErrNotJWT] (wrapped) if the string is not a JWT.
func InspectToken(tokenString string) (TokenInfo, error) {
	tokenString = strings.TrimSpace(tokenString)
	if strings.Count(tokenString, ".") != 2 {
		return TokenInfo{}, ErrNotJWT
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	var info TokenInfo
	if info.Subject, err = token.Claims.GetSubject(); err != nil {
		return TokenInfo{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return TokenInfo{}, fmt.Errorf("error occurred during getting expiry from token: %w", err)
	}
	if exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer x"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
