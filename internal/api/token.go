package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TokenTTL is how long an admin token stays valid after issuing.
	TokenTTL = 1 * time.Hour

	// TokenClockSkew tolerates small clock differences between issuer
	// and verifier.
	TokenClockSkew = 5 * time.Minute
)

// Admin token errors.
var (
	ErrTokenRequired  = errors.New("admin token required")
	ErrTokenMalformed = errors.New("admin token malformed")
	ErrTokenExpired   = errors.New("admin token expired")
	ErrTokenInvalid   = errors.New("admin token invalid")
)

// tokenIssuer issues and verifies HMAC-based admin tokens of the form
// "timestamp:signature". Tokens are stateless: the secret is derived from
// the admin password, so a password change invalidates all tokens.
type tokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// newTokenIssuer derives the HMAC secret from the admin password.
// The SHA-256 stretch gives a fixed-size key regardless of password length.
func newTokenIssuer(adminPassword string) *tokenIssuer {
	secret := sha256.Sum256([]byte("admin-token:" + adminPassword))
	return &tokenIssuer{
		secret: secret[:],
		now:    time.Now,
	}
}

// Issue creates a token valid for TokenTTL.
func (t *tokenIssuer) Issue() string {
	timestamp := t.now().Unix()

	h := hmac.New(sha256.New, t.secret)
	fmt.Fprintf(h, "%d", timestamp)
	signature := base64.URLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%d:%s", timestamp, signature)
}

// Verify checks the token signature and expiration.
// Returns nil on success, or a specific error describing the failure.
func (t *tokenIssuer) Verify(token string) error {
	if token == "" {
		return ErrTokenRequired
	}

	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return ErrTokenMalformed
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ErrTokenMalformed
	}

	age := t.now().Sub(time.Unix(timestamp, 0))
	if age > TokenTTL {
		return ErrTokenExpired
	}
	if age < -TokenClockSkew {
		// Future timestamp = tampering.
		return ErrTokenInvalid
	}

	h := hmac.New(sha256.New, t.secret)
	fmt.Fprintf(h, "%d", timestamp)
	expectedSig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expectedSig)) != 1 {
		return ErrTokenInvalid
	}

	return nil
}
