// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session handles anonymous participant session ids.

There are no accounts. A participant is whoever holds a session id; clients
may mint their own (the web client keeps one in local storage) or ask the
server for one:

	token, err := session.GenerateToken()

Tokens are 24 random bytes encoded as URL-safe base64 without padding.

# Requests

Vote and contribution requests carry the id in the X-Session-ID header:

	sessionID, err := session.FromRequest(r)

FromRequest returns ErrMissingToken when the header is absent or blank and
ErrInvalidToken when it is longer than MaxLength. Nothing else is verified;
resetting the session gives a participant a fresh vote budget.
*/
package session
