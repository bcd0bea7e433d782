package session

import (
	"blog/internal/core/domain/user"
	"strings"

	"github.com/google/uuid"
)

// TokenGenerator issues session tokens from random (v4) UUIDs in their
// 32 character hex form.
type TokenGenerator struct{}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

func (g *TokenGenerator) GenerateToken() user.SessionToken {
	return user.SessionToken(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
