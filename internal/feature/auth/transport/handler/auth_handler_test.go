package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/feature/user/domain/entity"
	jwtmw "account_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignInFunc func(ctx context.Context, email, password string) (string, *entity.User, error)
}

// SignIn is the mock implementation of the SignIn method.
func (m *mockAuthUsecase) SignIn(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return "", nil, usecase.ErrUserNotFound // Default: failure
}

func TestAuthHandler_Signin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignInFunc func(ctx context.Context, email, password string) (string, *entity.User, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: valid credentials",
			requestBody: gin.H{"email": "a@x.com", "password": "secret1"},
			mockSignInFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "signed-token", &entity.User{ID: 1, Name: "A", Email: "a@x.com"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unknown email",
			requestBody:    gin.H{"email": "nobody@x.com", "password": "secret1"},
			mockSignInFunc: nil, // Default: ErrUserNotFound
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "User not found",
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"email": "a@x.com", "password": "wrong"},
			mockSignInFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Email and password don't match.",
		},
		{
			name:           "failure: invalid email format",
			requestBody:    gin.H{"email": "not-an-email", "password": "secret1"},
			mockSignInFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "a@x.com"},
			mockSignInFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignInFunc: tt.mockSignInFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/signin", handler.Signin)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/signin", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, responseBody["error"])
			}
		})
	}
}

// TestAuthHandler_Signin_ResponseShape verifies the success body carries the
// token and a sanitized profile, and the token is mirrored into the cookie.
func TestAuthHandler_Signin_ResponseShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAuthUsecase{
		SignInFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
			return "signed-token", &entity.User{
				ID:             3,
				Name:           "A",
				Email:          "a@x.com",
				HashedPassword: "should-never-leak",
				Salt:           "should-never-leak",
			}, nil
		},
	}
	handler := NewAuthHandler(mockUC)

	router := gin.New()
	router.POST("/auth/signin", handler.Signin)

	body, _ := json.Marshal(gin.H{"email": "a@x.com", "password": "secret1"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, float64(3), resp.User["id"])
	assert.Equal(t, "A", resp.User["name"])
	assert.Equal(t, "a@x.com", resp.User["email"])
	assert.NotContains(t, w.Body.String(), "should-never-leak")

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == jwtmw.CookieName {
			sessionCookie = ck
		}
	}
	if assert.NotNil(t, sessionCookie, "expected session cookie to be set") {
		assert.Equal(t, "signed-token", sessionCookie.Value)
	}
}

// TestAuthHandler_Signout verifies the cookie is cleared and the
// acknowledgement message returned.
func TestAuthHandler_Signout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&mockAuthUsecase{})

	router := gin.New()
	router.GET("/auth/signout", handler.Signout)

	req, _ := http.NewRequest(http.MethodGet, "/auth/signout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.Equal(t, "signed out", responseBody["message"])

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == jwtmw.CookieName {
			sessionCookie = ck
		}
	}
	if assert.NotNil(t, sessionCookie, "expected session cookie to be cleared") {
		assert.Empty(t, sessionCookie.Value)
		assert.Negative(t, sessionCookie.MaxAge)
	}
}
