package token

import (
	"testing"
)

func TestGeneratedTokensAreUnique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		token := string(g.GenerateToken())
		if len(token) != 64 {
			t.Fatalf("unexpected token length: %d", len(token))
		}
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}
