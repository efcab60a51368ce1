package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthClaims is the minimal view of a verified token the rest of the system
// needs. Keeping it an interface lets the token implementation change
// without touching services.
type AuthClaims interface {
	GetUserID() uuid.UUID
	GetSessionID() *uuid.UUID
	GetTokenType() string
	IsExpired() bool
}

// WithClaims stores authentication claims in the context.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext retrieves claims, or nil for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	claims, ok := ctx.Value(keyClaims).(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromContext extracts the actor's user ID from claims.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}
