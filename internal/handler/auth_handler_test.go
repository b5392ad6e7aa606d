package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/auth"
	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return hash
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Token(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "HS256")
	user := &model.User{
		ID:           1,
		Username:     "clarice",
		Email:        "clarice@example.com",
		PasswordHash: mustHash(t, "perto-do-coracao"),
	}

	tests := []struct {
		name           string
		form           url.Values
		setupMock      func(repo *MockUserRepository)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "valid credentials issue a bearer token",
			form: url.Values{
				"username": {"clarice@example.com"},
				"password": {"perto-do-coracao"},
			},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "clarice@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			form: url.Values{
				"username": {"clarice@example.com"},
				"password": {"errada"},
			},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "clarice@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: apperr.DetailInvalidCredentials,
		},
		{
			name: "unknown email",
			form: url.Values{
				"username": {"ninguem@example.com"},
				"password": {"tanto-faz"},
			},
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "ninguem@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: apperr.DetailInvalidCredentials,
		},
		{
			name:           "missing password",
			form:           url.Values{"username": {"clarice@example.com"}},
			setupMock:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: apperr.DetailInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			authService := service.NewAuthService(repo, jwtService, 30*time.Minute, 30*time.Minute)
			h := NewAuthHandler(authService)

			e := newTestEcho()
			e.POST("/auth/token", h.Token)

			rec := postForm(e, "/auth/token", tt.form)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var body TokenResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "bearer", body.TokenType)

				claims, err := jwtService.ParseToken(body.AccessToken)
				assert.NoError(t, err)
				assert.Equal(t, user.Email, claims.Subject)
			} else {
				var body apperr.DetailResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedDetail, body.Detail)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "HS256")
	user := &model.User{ID: 1, Username: "clarice", Email: "clarice@example.com"}

	repo := new(MockUserRepository)
	authService := service.NewAuthService(repo, jwtService, 30*time.Minute, 30*time.Minute)
	h := NewAuthHandler(authService)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(currentUserKey, user)

	assert.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bearer", body.TokenType)

	claims, err := jwtService.ParseToken(body.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, claims.Subject)
}

func TestAuthHandler_RefreshTokenWithoutSession(t *testing.T) {
	repo := new(MockUserRepository)
	authService := service.NewAuthService(repo, auth.NewJWTService("test-secret", "HS256"), 30*time.Minute, 30*time.Minute)
	h := NewAuthHandler(authService)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh_token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body apperr.DetailResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.DetailCouldNotValidate, body.Detail)
}
