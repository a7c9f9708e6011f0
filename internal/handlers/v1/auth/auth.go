package auth

import (
	"net/http"
	"time"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Normalized email"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 signup time"`
}

// CredentialsBody is the request body for signup and login.
type CredentialsBody struct {
	Email    string `json:"email" required:"true" format:"email" maxLength:"254" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"6" maxLength:"72" doc:"Password, at least 6 characters"`
}

// SessionOutput carries the token cookies along with the user.
type SessionOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      envelope.Response[User]
}

func userToResponse(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func sessionCookies(cookies session.Cookies, s *service.Session) []http.Cookie {
	return []http.Cookie{
		cookies.Access(s.Access.Value),
		cookies.Refresh(s.Refresh.Value),
	}
}
