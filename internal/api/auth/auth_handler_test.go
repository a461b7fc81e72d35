package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GH-57/First-Project/internal/config"
	"github.com/GH-57/First-Project/internal/store/memory"
)

func newTestHandler(t *testing.T) *AuthHandler {
	t.Helper()
	return NewAuthHandler(config.AuthConfig{Secret: "test-secret", TokenTTL: 30 * time.Minute}, memory.New())
}

func registerBody(email, password, nickname string) *strings.Reader {
	b, _ := json.Marshal(RegisterRequest{Email: email, Password: password, Nickname: nickname})
	return strings.NewReader(string(b))
}

func doRegister(h *AuthHandler, body *strings.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	return rr
}

func doLogin(h *AuthHandler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := doRegister(h, registerBody("a@x.com", "pw", "Nick"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RegisterResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	require.Equal(t, http.StatusOK, doRegister(h, registerBody("a@x.com", "pw", "Nick")).Code)

	rr := doRegister(h, registerBody("a@x.com", "other", "Other"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "email taken", resp.Error)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := doRegister(h, registerBody("a@x.com", "", "Nick"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	require.Equal(t, http.StatusOK, doRegister(h, registerBody("a@x.com", "pw", "Nick")).Code)

	rr := doLogin(h, "a@x.com", "pw")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "Nick", resp.Nickname)

	claims, err := h.service.ParseJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	require.Equal(t, http.StatusOK, doRegister(h, registerBody("a@x.com", "pw", "Nick")).Code)

	assert.Equal(t, http.StatusUnauthorized, doLogin(h, "a@x.com", "wrong").Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	assert.Equal(t, http.StatusUnauthorized, doLogin(h, "nobody@x.com", "pw").Code)
}

func protectedProbe(h *AuthHandler) (http.Handler, *string) {
	var seenEmail string
	probe := h.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := AccountFromContext(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		seenEmail = account.Email
		w.WriteHeader(http.StatusOK)
	}))
	return probe, &seenEmail
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	require.Equal(t, http.StatusOK, doRegister(h, registerBody("a@x.com", "pw", "Nick")).Code)

	var login LoginResponse
	rr := doLogin(h, "a@x.com", "pw")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&login))

	probe, seenEmail := protectedProbe(h)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	out := httptest.NewRecorder()
	probe.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	assert.Equal(t, "a@x.com", *seenEmail)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	probe, _ := protectedProbe(h)

	expired := NewAuthService(config.AuthConfig{Secret: "test-secret", TokenTTL: -time.Minute})
	expiredToken, err := expired.GenerateJWT("a@x.com")
	require.NoError(t, err)

	misSigned := NewAuthService(config.AuthConfig{Secret: "another-secret", TokenTTL: time.Hour})
	misSignedToken, err := misSigned.GenerateJWT("a@x.com")
	require.NoError(t, err)

	// valid signature, but the subject was never registered
	unknownToken, err := h.service.GenerateJWT("ghost@x.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer header", "Basic abc"},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"mis-signed token", "Bearer " + misSignedToken},
		{"unknown subject", "Bearer " + unknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			out := httptest.NewRecorder()
			probe.ServeHTTP(out, req)
			assert.Equal(t, http.StatusUnauthorized, out.Code)
		})
	}
}
