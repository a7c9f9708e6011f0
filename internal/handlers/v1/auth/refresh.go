package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// RefreshInput is the Huma input for refreshing the access token.
type RefreshInput struct {
	RefreshToken string `cookie:"rjwt" doc:"Refresh token cookie"`
}

// RefreshBody carries the new access token expiry.
type RefreshBody struct {
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 expiry of the new access token"`
}

// RefreshOutput is the Huma output for refreshing the access token.
type RefreshOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      envelope.Response[RefreshBody]
}

type refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*service.Token, error)
}

// RefreshHandler handles POST /v1/users/auth/r.
type RefreshHandler struct {
	AuthService refresher
	Cookies     session.Cookies
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(svc refresher, cookies session.Cookies) *RefreshHandler {
	return &RefreshHandler{AuthService: svc, Cookies: cookies}
}

// Register registers the refresh access token endpoint with the Huma API.
func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/v1/users/auth/r",
		Summary:     "Refresh access token",
		Description: "Exchanges the refresh cookie for a new access cookie.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RefreshHandler) handle(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	access, err := h.AuthService.Refresh(ctx, input.RefreshToken)
	if errors.Is(err, service.ErrInvalidRefreshToken) {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid refresh token", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to refresh token", err)
	}

	return &RefreshOutput{
		SetCookie: []http.Cookie{h.Cookies.Access(access.Value)},
		Body:      envelope.OK("Token refreshed", RefreshBody{ExpiresAt: access.ExpiresAt.UTC().Format(time.RFC3339)}),
	}, nil
}
