package token

import (
	"crypto/rand"
	"encoding/hex"
	"pagecms/internal/core/domain/user"
)

// Generator produces 64-character hex tokens from 32 bytes of CSPRNG
// output. Account tokens end up in emailed links, guessing one must not
// be feasible.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() user.TokenValue {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("Could not read random bytes.")
	}
	return user.TokenValue(hex.EncodeToString(b))
}
