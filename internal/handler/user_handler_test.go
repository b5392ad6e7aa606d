package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(repo *MockUserRepository)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "registers an account with a normalized username",
			body: `{"username": "  Clarice   Lispector ", "email": "clarice@example.com", "password": "segredo"}`,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByUsernameOrEmail", mock.Anything, "clarice lispector", "clarice@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 7
					}).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "username already registered",
			body: `{"username": "clarice lispector", "email": "outra@example.com", "password": "segredo"}`,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByUsernameOrEmail", mock.Anything, "clarice lispector", "outra@example.com").
					Return(&model.User{ID: 2, Username: "clarice lispector", Email: "clarice@example.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: apperr.DetailAccountExists,
		},
		{
			name: "email already registered",
			body: `{"username": "outro nome", "email": "clarice@example.com", "password": "segredo"}`,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByUsernameOrEmail", mock.Anything, "outro nome", "clarice@example.com").
					Return(&model.User{ID: 2, Username: "clarice lispector", Email: "clarice@example.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: apperr.DetailEmailExists,
		},
		{
			name:           "rejects an invalid email",
			body:           `{"username": "clarice", "email": "nao-e-email", "password": "segredo"}`,
			setupMock:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			h := NewUserHandler(service.NewUserService(repo))
			e := newTestEcho()
			e.POST("/user", h.Create)

			rec := postJSON(e, "/user", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			switch {
			case tt.expectedStatus == http.StatusCreated:
				var body UserResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, uint(7), body.ID)
				assert.Equal(t, "clarice lispector", body.Username)
				assert.NotContains(t, rec.Body.String(), "password")
			case tt.expectedDetail != "":
				var body apperr.DetailResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedDetail, body.Detail)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserHandler_UpdateOtherAccountIsForbidden(t *testing.T) {
	repo := new(MockUserRepository)
	h := NewUserHandler(service.NewUserService(repo))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/user/2",
		strings.NewReader(`{"username": "novo", "email": "novo@example.com", "password": "segredo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")
	c.Set(currentUserKey, &model.User{ID: 1, Username: "clarice", Email: "clarice@example.com"})

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body apperr.DetailResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.DetailNotAuthorized, body.Detail)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserHandler_DeleteOwnAccount(t *testing.T) {
	current := &model.User{ID: 1, Username: "clarice", Email: "clarice@example.com"}

	repo := new(MockUserRepository)
	repo.On("Delete", mock.Anything, current).Return(nil)
	h := NewUserHandler(service.NewUserService(repo))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/user/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(currentUserKey, current)

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body apperr.MessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.MessageAccountDeleted, body.Message)
	repo.AssertExpectations(t)
}

func TestUserHandler_DeleteOtherAccountIsForbidden(t *testing.T) {
	repo := new(MockUserRepository)
	h := NewUserHandler(service.NewUserService(repo))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/user/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/:id")
	c.SetParamNames("id")
	c.SetParamValues("9")
	c.Set(currentUserKey, &model.User{ID: 1})

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
