package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GridToken is a stateless carrier for a grid's full state (values,
// givens, and candidates) between requests. The demo server never keeps
// a session store: every handler decodes the incoming token, mutates a
// grid.Grid built from it, and signs a fresh token for the response.
// Adapted from the teacher's SessionToken/createToken/verifyToken
// (internal/transport/http/token.go), which carried game-session
// metadata (device/puzzle/seed/difficulty) instead of grid state —
// same HMAC-signed, base64url-encoded, constant-time-verified envelope.
type GridToken struct {
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
}

const tokenTTL = 2 * time.Hour

func createToken(secret string, t GridToken) (string, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	encoded := base64.URLEncoding.EncodeToString(payload)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	sig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s.%s", encoded, sig), nil
}

func verifyToken(secret, token string) (*GridToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	encoded := parts[0]
	sig := parts[1]

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	expectedSig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	// Use constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expectedSig)) != 1 {
		return nil, fmt.Errorf("invalid signature")
	}

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var t GridToken
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, err
	}

	if time.Now().After(t.ExpiresAt) {
		return nil, fmt.Errorf("token expired")
	}

	return &t, nil
}
