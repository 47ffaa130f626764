package token

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"strings"
)

type staticProvider struct {
	token string
}

// NewStaticProvider serves one fixed bearer, used by the CLI. An empty value
// behaves as an absent token.
func NewStaticProvider(token string) contracts.TokenProvider {
	return &staticProvider{token: strings.TrimSpace(token)}
}

func (p *staticProvider) GetToken(ctx context.Context) (string, bool) {
	if p.token == "" {
		return "", false
	}
	return p.token, true
}
