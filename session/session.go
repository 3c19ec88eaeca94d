// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Header carries the participant session id on every vote and read request
const Header = "X-Session-ID"

// MaxLength bounds client-minted session ids
const MaxLength = 128

var (
	ErrMissingToken = errors.New(Header + " header required")
	ErrInvalidToken = errors.New("invalid session id")
)

// GenerateToken creates a random session id for a participant
func GenerateToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// FromRequest reads the session id from the request header.
// The id is opaque: only its presence and length are checked.
func FromRequest(r *http.Request) (string, error) {
	token := strings.TrimSpace(r.Header.Get(Header))
	if token == "" {
		return "", ErrMissingToken
	}
	if len(token) > MaxLength {
		return "", ErrInvalidToken
	}
	return token, nil
}
