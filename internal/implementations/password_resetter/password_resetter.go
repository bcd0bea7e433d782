package passwordresetter

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	saltSize = 8
	// Encoded tokens are far shorter than this; anything longer is rejected before decoding.
	maxTokenLength = 256
)

// Keys holds the signing secrets. Tokens are signed with Current; Previous
// keys are still accepted on verification so that Current can be rotated.
type Keys struct {
	Current  []byte
	Previous [][]byte
}

func NewKeys(current string, previous ...string) Keys {
	keys := Keys{Current: []byte(current)}
	for _, key := range previous {
		if key == "" {
			continue
		}
		keys.Previous = append(keys.Previous, []byte(key))
	}
	return keys
}

// HMAC issues tokens of the form base64url("<user id>-<unix ts>-<salt>-<hex mac>")
// where the MAC is HMAC-SHA256 over "<user id>-<unix ts>-<salt>".
// The user id is written as its unsigned 64-bit value so every id round-trips
// through the "-" separated payload.
type HMAC struct {
	keys          Keys
	validDuration time.Duration
	now           func() time.Time
}

func NewHMAC(keys Keys, validDuration time.Duration, now func() time.Time) *HMAC {
	if len(keys.Current) == 0 {
		panic(e.NewEmptyArgumentError("keys.Current"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &HMAC{
		keys:          keys,
		validDuration: validDuration,
		now:           now,
	}
}

func (h *HMAC) Issue(userID user.ID) user.PasswordResetToken {
	payload := fmt.Sprintf("%d-%d-%s", uint64(userID), h.now().Unix(), newSalt())
	mac := sign(h.keys.Current, payload)
	return user.PasswordResetToken(
		base64.RawURLEncoding.EncodeToString([]byte(payload + "-" + mac)),
	)
}

func (h *HMAC) Verify(token user.PasswordResetToken) (user.ID, error) {
	if len(token) == 0 || len(token) > maxTokenLength {
		return 0, user.ErrInvalidOrExpiredToken
	}
	decoded, err := base64.RawURLEncoding.DecodeString(string(token))
	if err != nil {
		return 0, user.ErrInvalidOrExpiredToken
	}
	parts := strings.Split(string(decoded), "-")
	if len(parts) != 4 {
		return 0, user.ErrInvalidOrExpiredToken
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) || parts[2] == "" {
		return 0, user.ErrInvalidOrExpiredToken
	}
	rawUserID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, user.ErrInvalidOrExpiredToken
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, user.ErrInvalidOrExpiredToken
	}

	payload := strings.Join(parts[:3], "-")
	if !h.isSignedWithKnownKey(payload, parts[3]) {
		return 0, user.ErrInvalidOrExpiredToken
	}

	issuedAt := time.Unix(ts, 0)
	if h.now().Sub(issuedAt) > h.validDuration {
		return 0, user.ErrInvalidOrExpiredToken
	}
	return user.ID(int64(rawUserID)), nil
}

func (h *HMAC) isSignedWithKnownKey(payload string, mac string) bool {
	valid := subtle.ConstantTimeCompare([]byte(mac), []byte(sign(h.keys.Current, payload))) == 1
	for _, key := range h.keys.Previous {
		if subtle.ConstantTimeCompare([]byte(mac), []byte(sign(key, payload))) == 1 {
			valid = true
		}
	}
	return valid
}

func sign(key []byte, payload string) string {
	hasher := hmac.New(sha256.New, key)
	hasher.Write([]byte(payload))
	return hex.EncodeToString(hasher.Sum(nil))
}

func newSalt() string {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes for a password reset salt: %v", err))
	}
	return hex.EncodeToString(b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
