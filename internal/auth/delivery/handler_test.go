package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "caresync/internal/auth/domain"
	authdto "caresync/internal/auth/dto"
	"caresync/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", AuthMiddleware(uc), h.Me)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_ValidationErrors(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{})

	w := postJSON(r, "/api/auth/register", `{"email":"not-an-email","password":"short","role":"admin"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 3)
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{registerErr: usecase.ErrEmailTaken})

	w := postJSON(r, "/api/auth/register", `{"email":"dup@b.com","password":"password1","role":"patient"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterHandler_Success(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{
		registerResp: &authdomain.User{ID: "u-1", Email: "new@b.com", Role: authdomain.RolePatient},
	})

	w := postJSON(r, "/api/auth/register", `{"email":"new@b.com","password":"password1","role":"patient"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
	// Registration hands back no token
	assert.NotContains(t, w.Body.String(), "access_token")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	w := postJSON(r, "/api/auth/login", `{"email":"a@b.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{
		loginResp: &authdto.TokenResponse{
			AccessToken: "tok-1",
			User:        &authdomain.User{ID: "u-1", Role: authdomain.RolePatient},
		},
	})

	w := postJSON(r, "/api/auth/login", `{"email":"a@b.com","password":"password1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body authdto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "tok-1", body.AccessToken)
	require.NotNil(t, body.User)
	assert.Equal(t, "u-1", body.User.ID)
}

func TestMeHandler(t *testing.T) {
	uc := &fakeAuthUsecase{
		validToken: "tok-1",
		user:       &authdomain.User{ID: "u-1", Email: "a@b.com", Role: authdomain.RolePatient},
	}
	r := authRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestLogoutHandler(t *testing.T) {
	r := authRouter(&fakeAuthUsecase{})

	t.Run("missing token", func(t *testing.T) {
		w := postJSON(r, "/api/auth/logout", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
