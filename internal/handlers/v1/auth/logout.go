package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
)

// LogoutOutput is the Huma output for logging out.
type LogoutOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      envelope.Response[*struct{}]
}

// LogoutHandler handles POST /v1/users/auth/logout. Tokens are stateless, so
// logging out only clears the cookies.
type LogoutHandler struct {
	Cookies session.Cookies
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(cookies session.Cookies) *LogoutHandler {
	return &LogoutHandler{Cookies: cookies}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/v1/users/auth/logout",
		Summary:     "Log out",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(_ context.Context, _ *struct{}) (*LogoutOutput, error) {
	return &LogoutOutput{
		SetCookie: h.Cookies.Expired(),
		Body:      envelope.OK[*struct{}]("Logged out", nil),
	}, nil
}
