package token

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"strings"
)

type contextProvider struct{}

// NewContextProvider reads the bearer the console middleware lifted from the
// incoming admin request. The console never stores or clears it.
func NewContextProvider() contracts.TokenProvider {
	return &contextProvider{}
}

func (p *contextProvider) GetToken(ctx context.Context) (string, bool) {
	token, _ := ctx.Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_BEARER_TOKEN_KEY, token)
}
