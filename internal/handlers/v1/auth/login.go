package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
)

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body CredentialsBody
}

type loginService interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
}

// LoginHandler handles POST /v1/users/auth/login.
type LoginHandler struct {
	AuthService loginService
	Cookies     session.Cookies
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc loginService, cookies session.Cookies) *LoginHandler {
	return &LoginHandler{AuthService: svc, Cookies: cookies}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/users/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and sets the access and refresh cookies.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	stopTimer := logging.Timed(ctx, "loginMs")
	s, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	stopTimer()
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.NewError(http.StatusUnauthorized, "Invalid credentials", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to log in", err)
	}

	logging.AddData(ctx, "userID", s.User.ID.String())
	return &SessionOutput{
		SetCookie: sessionCookies(h.Cookies, s),
		Body:      envelope.OK("Login successful", userToResponse(s.User)),
	}, nil
}
