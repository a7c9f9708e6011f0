package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
	"github.com/carson-networks/expensum/internal/token"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.Token, error) {
	args := m.Called(ctx, refreshToken)
	tok, _ := args.Get(0).(*service.Token)
	return tok, args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, userID uuid.UUID) (*service.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

var testCookies = session.Cookies{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

func newTestTokens(t *testing.T) *token.Service {
	t.Helper()
	tokens, err := token.NewService("test-secret", testCookies.AccessTTL, testCookies.RefreshTTL)
	require.NoError(t, err)
	return tokens
}

func newTestAPI(t *testing.T, svc *mockAuthService, tokens *token.Service) humatest.TestAPI {
	t.Helper()
	envelope.Install()
	_, api := humatest.New(t)
	NewSignupHandler(svc, testCookies).Register(api)
	NewLoginHandler(svc, testCookies).Register(api)
	NewRefreshHandler(svc, testCookies).Register(api)
	NewLogoutHandler(testCookies).Register(api)
	NewMeHandler(svc, tokens).Register(api)
	return api
}

func issueSession(t *testing.T, tokens *token.Service, user service.User) *service.Session {
	t.Helper()
	access, accessExp, err := tokens.Issue(user.ID, token.KindAccess)
	require.NoError(t, err)
	refresh, refreshExp, err := tokens.Issue(user.ID, token.KindRefresh)
	require.NoError(t, err)
	return &service.Session{
		User:    user,
		Access:  service.Token{Value: access, ExpiresAt: accessExp},
		Refresh: service.Token{Value: refresh, ExpiresAt: refreshExp},
	}
}

func responseCookies(header http.Header) map[string]*http.Cookie {
	cookies := map[string]*http.Cookie{}
	for _, c := range (&http.Response{Header: header}).Cookies() {
		cookies[c.Name] = c
	}
	return cookies
}

func TestHTTP_Signup_SetsCookiesAndAuthenticates(t *testing.T) {
	tokens := newTestTokens(t)
	user := service.User{ID: uuid.Must(uuid.NewV4()), Email: "ann@example.com", CreatedAt: time.Now()}
	svc := new(mockAuthService)
	svc.On("Signup", mock.Anything, "ann@example.com", "secret1").Return(issueSession(t, tokens, user), nil)
	svc.On("Me", mock.Anything, user.ID).Return(&user, nil)
	api := newTestAPI(t, svc, tokens)

	resp := api.Put("/v1/users/auth/signup", CredentialsBody{Email: "ann@example.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, resp.Code)

	cookies := responseCookies(resp.Header())
	require.Contains(t, cookies, "ajwt")
	require.Contains(t, cookies, "rjwt")
	assert.NotEmpty(t, cookies["ajwt"].Value)
	assert.NotEmpty(t, cookies["rjwt"].Value)
	assert.True(t, cookies["ajwt"].HttpOnly)
	assert.Equal(t, "/v1/users/auth", cookies["rjwt"].Path)

	var body envelope.Response[User]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Account created", body.Message)
	assert.True(t, body.Success)
	assert.Equal(t, user.ID.String(), body.Body.ID)

	me := api.Get("/v1/users/me", "Cookie: ajwt="+cookies["ajwt"].Value)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "ann@example.com")
	svc.AssertExpectations(t)
}

func TestHTTP_Signup_DuplicateEmail(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Signup", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken)

	resp := newTestAPI(t, svc, newTestTokens(t)).Put("/v1/users/auth/signup",
		CredentialsBody{Email: "ann@example.com", Password: "secret1"})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "Email already registered")
	assert.Empty(t, resp.Header().Values("Set-Cookie"))
}

func TestHTTP_Signup_Validation(t *testing.T) {
	svc := new(mockAuthService)
	api := newTestAPI(t, svc, newTestTokens(t))

	short := api.Put("/v1/users/auth/signup", CredentialsBody{Email: "ann@example.com", Password: "123"})
	assert.Equal(t, http.StatusUnprocessableEntity, short.Code)

	badEmail := api.Put("/v1/users/auth/signup", CredentialsBody{Email: "not-an-email", Password: "secret1"})
	assert.Equal(t, http.StatusUnprocessableEntity, badEmail.Code)

	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_Login_Success(t *testing.T) {
	tokens := newTestTokens(t)
	user := service.User{ID: uuid.Must(uuid.NewV4()), Email: "ann@example.com"}
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ann@example.com", "secret1").Return(issueSession(t, tokens, user), nil)

	resp := newTestAPI(t, svc, tokens).Post("/v1/users/auth/login",
		CredentialsBody{Email: "ann@example.com", Password: "secret1"})

	require.Equal(t, http.StatusOK, resp.Code)
	cookies := responseCookies(resp.Header())
	subject, err := tokens.VerifyAccess(cookies["ajwt"].Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
	assert.Contains(t, resp.Body.String(), "Login successful")
}

func TestHTTP_Login_InvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)
	api := newTestAPI(t, svc, newTestTokens(t))

	wrongPassword := api.Post("/v1/users/auth/login", CredentialsBody{Email: "ann@example.com", Password: "wrong-one"})
	unknownEmail := api.Post("/v1/users/auth/login", CredentialsBody{Email: "bob@example.com", Password: "secret1"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}

func TestHTTP_Refresh_SetsAccessCookieOnly(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Refresh", mock.Anything, "refresh-value").
		Return(&service.Token{Value: "new-access", ExpiresAt: time.Now().Add(time.Minute)}, nil)

	resp := newTestAPI(t, svc, newTestTokens(t)).Post("/v1/users/auth/r", "Cookie: rjwt=refresh-value")

	require.Equal(t, http.StatusOK, resp.Code)
	cookies := responseCookies(resp.Header())
	assert.Equal(t, "new-access", cookies["ajwt"].Value)
	assert.NotContains(t, cookies, "rjwt")
	assert.Contains(t, resp.Body.String(), "Token refreshed")
}

func TestHTTP_Refresh_Invalid(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Refresh", mock.Anything, "").Return(nil, service.ErrInvalidRefreshToken)

	resp := newTestAPI(t, svc, newTestTokens(t)).Post("/v1/users/auth/r")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid refresh token")
}

func TestHTTP_Logout_ExpiresCookies(t *testing.T) {
	resp := newTestAPI(t, new(mockAuthService), newTestTokens(t)).Post("/v1/users/auth/logout")

	require.Equal(t, http.StatusOK, resp.Code)
	setCookies := resp.Header().Values("Set-Cookie")
	require.Len(t, setCookies, 2)
	for _, c := range setCookies {
		assert.True(t, strings.Contains(c, "Max-Age=0"), c)
	}
}

func TestHTTP_Me_RequiresAccessToken(t *testing.T) {
	tokens := newTestTokens(t)
	refresh, _, err := tokens.Issue(uuid.Must(uuid.NewV4()), token.KindRefresh)
	require.NoError(t, err)
	api := newTestAPI(t, new(mockAuthService), tokens)

	assert.Equal(t, http.StatusUnauthorized, api.Get("/v1/users/me").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/v1/users/me", "Cookie: ajwt="+refresh).Code)
}
