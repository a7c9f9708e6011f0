// Package session guards operations behind the access token cookie and builds the
// auth cookies.
package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/logging"
)

const (
	AccessCookie  = "ajwt"
	RefreshCookie = "rjwt"
)

type userIDKey struct{}

// Verifier checks an access token and returns its user id.
type Verifier interface {
	VerifyAccess(token string) (uuid.UUID, error)
}

// Require rejects requests without a valid access token cookie and puts the
// verified user id on the context.
func Require(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cookie, err := huma.ReadCookie(ctx, AccessCookie)
		if err != nil || cookie.Value == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid access token")
			return
		}

		userID, err := verifier.VerifyAccess(cookie.Value)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid access token", err)
			return
		}

		logging.AddData(ctx.Context(), "userID", userID.String())
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

// UserID returns the user id Require stored on the context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// MustUserID is UserID for handlers registered behind Require. It fails with 401
// when the middleware is missing.
func MustUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("Invalid access token")
	}
	return userID, nil
}
