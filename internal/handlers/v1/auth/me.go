package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// MeOutput is the Huma output for fetching the signed-in user.
type MeOutput struct {
	Body envelope.Response[User]
}

type userGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*service.User, error)
}

// MeHandler handles GET /v1/users/me.
type MeHandler struct {
	AuthService userGetter
	Verifier    session.Verifier
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(svc userGetter, verifier session.Verifier) *MeHandler {
	return &MeHandler{AuthService: svc, Verifier: verifier}
}

// Register registers the get signed-in user endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-me",
		Method:      http.MethodGet,
		Path:        "/v1/users/me",
		Summary:     "Current user",
		Tags:        []string{"Users"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.AuthService.Me(ctx, userID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid access token", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to load user", err)
	}
	return &MeOutput{Body: envelope.OK("Current user", userToResponse(*user))}, nil
}
