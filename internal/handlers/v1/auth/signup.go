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

// SignupInput is the Huma input for signing up.
type SignupInput struct {
	Body CredentialsBody
}

type signupService interface {
	Signup(ctx context.Context, email, password string) (*service.Session, error)
}

// SignupHandler handles PUT /v1/users/auth/signup.
type SignupHandler struct {
	AuthService signupService
	Cookies     session.Cookies
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(svc signupService, cookies session.Cookies) *SignupHandler {
	return &SignupHandler{AuthService: svc, Cookies: cookies}
}

// Register registers the signup endpoint with the Huma API.
func (h *SignupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodPut,
		Path:          "/v1/users/auth/signup",
		Summary:       "Sign up",
		Description:   "Creates an account and signs it in.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SignupHandler) handle(ctx context.Context, input *SignupInput) (*SessionOutput, error) {
	stopTimer := logging.Timed(ctx, "signupMs")
	s, err := h.AuthService.Signup(ctx, input.Body.Email, input.Body.Password)
	stopTimer()
	if errors.Is(err, service.ErrEmailTaken) {
		return nil, huma.NewError(http.StatusConflict, "Email already registered", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to create account", err)
	}

	logging.AddData(ctx, "userID", s.User.ID.String())
	return &SessionOutput{
		SetCookie: sessionCookies(h.Cookies, s),
		Body:      envelope.Created("Account created", userToResponse(s.User)),
	}, nil
}
