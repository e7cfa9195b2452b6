package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/MKhiriev/go-auth-client/internal/adapter"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/mock"
	"github.com/MKhiriev/go-auth-client/models"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthClient creates an authClient backed by a mock transport.
func newTestAuthClient(t *testing.T) (*authClient, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockTransport := mock.NewMockTransport(ctrl)

	client := NewAuthClient(mockTransport, logger.Nop()).(*authClient)
	return client, mockTransport
}

func jsonResponse(status int, body string) *adapter.Response {
	return &adapter.Response{StatusCode: status, Body: []byte(body)}
}

func requireFailure[T any](t *testing.T, r models.Result[T], code, message string) *models.Failure {
	t.Helper()
	require.False(t, r.IsSuccess(), "expected failure, got success with %v", r.Data())
	require.Equal(t, models.ResultError, r.Type())
	f := r.Failure()
	require.NotNil(t, f)
	assert.Equal(t, code, f.Code)
	assert.Equal(t, message, f.Message)
	return f
}

func assertUnexpectedBody(t *testing.T, f *models.Failure, path string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(f.Raw)
	require.True(t, ok, "expected oops error, got %T", f.Raw)
	assert.EqualValues(t, models.CodeUnknownError, oopsErr.Code())
	assert.Equal(t, path, oopsErr.Context()["path"])
}

// ── LoginWithEmail ──────────────────────────────────────────────────────────

func TestAuthClient_LoginWithEmail_Success(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	ctx := context.Background()

	mockTransport.EXPECT().
		PostJSON(ctx, PathLoginWithEmail, models.LoginRequest{Email: "a@b.com", Password: "pw"}).
		Return(jsonResponse(http.StatusOK, `{"token":"abc123"}`), nil)

	r := client.LoginWithEmail(ctx, "a@b.com", "pw")

	require.True(t, r.IsSuccess())
	assert.Equal(t, models.ResultSuccess, r.Type())
	assert.Equal(t, models.AuthToken("abc123"), r.Data())
	assert.Nil(t, r.Failure())
}

func TestAuthClient_LoginWithEmail_ReturnsExactToken(t *testing.T) {
	tokens := []string{
		"a",
		"eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhQGIuY29tIn0.sig",
		"with spaces and ünïcödé",
		`quoted "token"`,
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			client, mockTransport := newTestAuthClient(t)
			mockTransport.EXPECT().
				PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
				Return(jsonResponse(http.StatusOK, fmt.Sprintf(`{"token":%q,"user":{"id":1}}`, token)), nil)

			r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

			require.True(t, r.IsSuccess())
			assert.Equal(t, models.AuthToken(token), r.Data())
		})
	}
}

func TestAuthClient_LoginWithEmail_InvalidCredentials(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathLoginWithEmail, models.LoginRequest{Email: "a@b.com", Password: "wrong"}).
		Return(jsonResponse(http.StatusUnauthorized, `{"error_code":"invalid_credentials","error":"Bad password"}`), nil)

	r := client.LoginWithEmail(context.Background(), "a@b.com", "wrong")

	f := requireFailure(t, r, "invalid_credentials", "Bad password")
	assert.ErrorIs(t, f.Raw, adapter.ErrUnauthorized)
	assert.Empty(t, r.Data())
}

func TestAuthClient_LoginWithEmail_LegacyErrorCodeField(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
		Return(jsonResponse(http.StatusForbidden, `{"errorCode":"email_not_confirmed","error":"Confirm your e-mail first"}`), nil)

	r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

	f := requireFailure(t, r, "email_not_confirmed", "Confirm your e-mail first")
	assert.ErrorIs(t, f.Raw, adapter.ErrForbidden)
}

func TestAuthClient_LoginWithEmail_ErrorBodyDefaults(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{name: "empty body", status: http.StatusInternalServerError, body: "", wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "html body", status: http.StatusBadGateway, body: "<html>502</html>", wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "empty object", status: http.StatusBadRequest, body: `{}`, wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "json array", status: http.StatusBadRequest, body: `["invalid"]`, wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "json null", status: http.StatusBadRequest, body: `null`, wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "wrong types", status: http.StatusBadRequest, body: `{"error_code":42,"error":false}`, wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "empty strings", status: http.StatusBadRequest, body: `{"error_code":"","error":""}`, wantCode: models.CodeUnknownError, wantMessage: models.MsgUnknownError},
		{name: "code only", status: http.StatusTooManyRequests, body: `{"error_code":"rate_limited"}`, wantCode: "rate_limited", wantMessage: models.MsgUnknownError},
		{name: "message only", status: http.StatusUnprocessableEntity, body: `{"error":"Email is invalid"}`, wantCode: models.CodeUnknownError, wantMessage: "Email is invalid"},
		{name: "canonical code wins over legacy", status: http.StatusConflict, body: `{"error_code":"a","errorCode":"b","error":"m"}`, wantCode: "a", wantMessage: "m"},
		{name: "redirect status", status: http.StatusFound, body: `{"error_code":"moved","error":"Moved"}`, wantCode: "moved", wantMessage: "Moved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mockTransport := newTestAuthClient(t)
			mockTransport.EXPECT().
				PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
				Return(jsonResponse(tt.status, tt.body), nil)

			r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

			f := requireFailure(t, r, tt.wantCode, tt.wantMessage)
			assert.Error(t, f.Raw)
		})
	}
}

func TestAuthClient_LoginWithEmail_NetworkError(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	cause := errors.New("timeout")

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
		Return(nil, cause)

	r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

	f := requireFailure(t, r, models.CodeNetworkError, "timeout")
	assert.Same(t, cause, f.Raw)
	assert.ErrorIs(t, f, cause)
}

func TestAuthClient_LoginWithEmail_ContextCancelled(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockTransport.EXPECT().
		PostJSON(ctx, PathLoginWithEmail, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ any) (*adapter.Response, error) {
			return nil, fmt.Errorf("Post %q: %w", "http://localhost/sessions/login_with_email", ctx.Err())
		})

	r := client.LoginWithEmail(ctx, "a@b.com", "pw")

	require.False(t, r.IsSuccess())
	assert.Equal(t, models.CodeNetworkError, r.Failure().Code)
	assert.ErrorIs(t, r.Failure().Raw, context.Canceled)
}

func TestAuthClient_LoginWithEmail_ErrorWithoutMessage(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	cause := errors.New("")

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
		Return(nil, cause)

	r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

	f := requireFailure(t, r, models.CodeUnknownError, models.MsgUnknownError)
	assert.Same(t, cause, f.Raw)
}

func TestAuthClient_LoginWithEmail_UnexpectedSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing token", body: `{"user":"a@b.com"}`},
		{name: "numeric token", body: `{"token":12345}`},
		{name: "object token", body: `{"token":{"value":"abc"}}`},
		{name: "null token", body: `{"token":null}`},
		{name: "empty token", body: `{"token":""}`},
		{name: "empty body", body: ``},
		{name: "malformed json", body: `{"token":`},
		{name: "not an object", body: `"abc123"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mockTransport := newTestAuthClient(t)
			mockTransport.EXPECT().
				PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
				Return(jsonResponse(http.StatusOK, tt.body), nil)

			r := client.LoginWithEmail(context.Background(), "a@b.com", "pw")

			f := requireFailure(t, r, models.CodeUnknownError, models.MsgUnknownError)
			assertUnexpectedBody(t, f, PathLoginWithEmail)
		})
	}
}

// ── ResendConfirmationEmail ─────────────────────────────────────────────────

func TestAuthClient_ResendConfirmationEmail_Success(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	ctx := context.Background()

	mockTransport.EXPECT().
		PostJSON(ctx, PathResendConfirmation, models.ResendConfirmationRequest{Email: "a@b.com"}).
		Return(jsonResponse(http.StatusOK, `{"message":"Confirmation e-mail sent"}`), nil)

	r := client.ResendConfirmationEmail(ctx, "a@b.com")

	require.True(t, r.IsSuccess())
	assert.Equal(t, models.ConfirmationMessage{Message: "Confirmation e-mail sent"}, r.Data())
}

func TestAuthClient_ResendConfirmationEmail_EmptyMessageIsAString(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathResendConfirmation, gomock.Any()).
		Return(jsonResponse(http.StatusAccepted, `{"message":""}`), nil)

	r := client.ResendConfirmationEmail(context.Background(), "a@b.com")

	require.True(t, r.IsSuccess())
	assert.Empty(t, r.Data().Message)
}

func TestAuthClient_ResendConfirmationEmail_UnexpectedBody(t *testing.T) {
	for _, body := range []string{`{}`, `{"message":["sent"]}`, ``, `not json`} {
		t.Run(body, func(t *testing.T) {
			client, mockTransport := newTestAuthClient(t)
			mockTransport.EXPECT().
				PostJSON(gomock.Any(), PathResendConfirmation, gomock.Any()).
				Return(jsonResponse(http.StatusOK, body), nil)

			r := client.ResendConfirmationEmail(context.Background(), "a@b.com")

			f := requireFailure(t, r, models.CodeUnknownError, models.MsgUnknownError)
			assertUnexpectedBody(t, f, PathResendConfirmation)
		})
	}
}

func TestAuthClient_ResendConfirmationEmail_ServerError(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathResendConfirmation, gomock.Any()).
		Return(jsonResponse(http.StatusNotFound, `{"error_code":"account_not_found","error":"No account for this e-mail"}`), nil)

	r := client.ResendConfirmationEmail(context.Background(), "nobody@b.com")

	f := requireFailure(t, r, "account_not_found", "No account for this e-mail")
	assert.ErrorIs(t, f.Raw, adapter.ErrNotFound)
}

func TestAuthClient_ResendConfirmationEmail_NetworkError(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathResendConfirmation, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	r := client.ResendConfirmationEmail(context.Background(), "a@b.com")

	requireFailure(t, r, models.CodeNetworkError, "connection refused")
}

// ── CreateAccountWithEmail ──────────────────────────────────────────────────

func TestAuthClient_CreateAccountWithEmail_Success(t *testing.T) {
	for _, body := range []string{``, `{}`, `not even json`} {
		t.Run(body, func(t *testing.T) {
			client, mockTransport := newTestAuthClient(t)
			ctx := context.Background()

			mockTransport.EXPECT().
				PostJSON(ctx, PathSignUpEmail, models.SignUpRequest{
					Email:                "a@b.com",
					Password:             "pw",
					PasswordConfirmation: "pw",
				}).
				Return(jsonResponse(http.StatusCreated, body), nil)

			r := client.CreateAccountWithEmail(ctx, "a@b.com", "pw", "pw")

			require.True(t, r.IsSuccess())
			assert.Equal(t, struct{}{}, r.Data())
		})
	}
}

func TestAuthClient_CreateAccountWithEmail_ServerError(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathSignUpEmail, gomock.Any()).
		Return(jsonResponse(http.StatusUnprocessableEntity, `{"error_code":"password_mismatch","error":"Passwords do not match"}`), nil)

	r := client.CreateAccountWithEmail(context.Background(), "a@b.com", "pw", "other")

	f := requireFailure(t, r, "password_mismatch", "Passwords do not match")
	assert.ErrorIs(t, f.Raw, adapter.ErrUnprocessable)
}

func TestAuthClient_CreateAccountWithEmail_NetworkError(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	cause := errors.New("no such host")

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathSignUpEmail, gomock.Any()).
		Return(nil, cause)

	r := client.CreateAccountWithEmail(context.Background(), "a@b.com", "pw", "pw")

	f := requireFailure(t, r, models.CodeNetworkError, "no such host")
	assert.Same(t, cause, f.Raw)
}

// ── concurrency ─────────────────────────────────────────────────────────────

func TestAuthClient_ConcurrentCallsAreIndependent(t *testing.T) {
	client, mockTransport := newTestAuthClient(t)
	const n = 32

	mockTransport.EXPECT().
		PostJSON(gomock.Any(), PathLoginWithEmail, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body any) (*adapter.Response, error) {
			req := body.(models.LoginRequest)
			if req.Password == "bad" {
				return jsonResponse(http.StatusUnauthorized, `{"error_code":"invalid_credentials","error":"Bad password"}`), nil
			}
			return jsonResponse(http.StatusOK, fmt.Sprintf(`{"token":"token-for-%s"}`, req.Email)), nil
		}).
		Times(n)

	var wg sync.WaitGroup
	results := make([]models.Result[models.AuthToken], n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			password := "pw"
			if i%2 == 1 {
				password = "bad"
			}
			results[i] = client.LoginWithEmail(context.Background(), fmt.Sprintf("user%d@b.com", i), password)
		}()
	}
	wg.Wait()

	for i, r := range results {
		if i%2 == 1 {
			requireFailure(t, r, "invalid_credentials", "Bad password")
			continue
		}
		require.True(t, r.IsSuccess())
		assert.Equal(t, models.AuthToken(fmt.Sprintf("token-for-user%d@b.com", i)), r.Data())
	}
}

// ── ClientServices ──────────────────────────────────────────────────────────

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := NewClientServices(mock.NewMockTransport(ctrl), logger.Nop())

	require.NotNil(t, services)
	assert.IsType(t, &authClient{}, services.AuthClient)
}
