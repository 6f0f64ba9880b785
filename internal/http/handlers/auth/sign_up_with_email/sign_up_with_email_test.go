package signupwithemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pagecms/internal/core/domain/user"
	service "pagecms/internal/core/services/sign_up_with_email"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.ValidationToken = user.TokenValue("test-validation-token")
	return result, nil
}

func TestSignUpWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.com", "password": "secret-password"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "with names",
			body:           `{"email": "test@test.com", "password": "secret-password", "first_name": "Jane", "last_name": "Doe"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email", "password": "secret-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"email": "test@test.com", "password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email already exists",
			body:           `{"email": "test@test.com", "password": "secret-password"}`,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "account created but email not sent",
			body:           `{"email": "test@test.com", "password": "secret-password"}`,
			serviceErr:     user.ErrTokenSendingFailed,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub, false)

			request := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestSignUpWithEmailTestModeExposesToken(t *testing.T) {
	assert := assert.New(t)
	stub := &stubService{}
	handler := New(stub, true)

	body := `{"email": "test@test.com", "password": "secret-password"}`
	request := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(http.StatusCreated, recorder.Code)
	assert.Equal("test-validation-token", recorder.Header().Get("x-test-validation-token"))
}
