package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-client/internal/adapter"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/models"
)

// Endpoint paths, relative to the configured API base URL.
const (
	PathLoginWithEmail     = "sessions/login_with_email"
	PathResendConfirmation = "sessions/resend_confirmation"
	PathSignUpEmail        = "sessions/sign_up_email"
)

const (
	fieldToken   = "token"
	fieldMessage = "message"
)

var errEmptyToken = errors.New(`field "token" is empty`)

type authClient struct {
	transport adapter.Transport

	logger *logger.Logger
}

// NewAuthClient returns an [AuthClient] that sends its requests through
// transport.
func NewAuthClient(transport adapter.Transport, logger *logger.Logger) AuthClient {
	return &authClient{transport: transport, logger: logger}
}

// LoginWithEmail implements [AuthClient].
func (a *authClient) LoginWithEmail(ctx context.Context, email, password string) models.Result[models.AuthToken] {
	resp, failure := a.post(ctx, PathLoginWithEmail, models.LoginRequest{Email: email, Password: password})
	if failure != nil {
		return failed[models.AuthToken](failure)
	}

	token, err := decodeStringField(resp, fieldToken)
	if err == nil && token == "" {
		err = errEmptyToken
	}
	if err != nil {
		return failed[models.AuthToken](a.unexpectedBody(PathLoginWithEmail, resp, err))
	}

	return models.Success(models.AuthToken(token))
}

// ResendConfirmationEmail implements [AuthClient].
func (a *authClient) ResendConfirmationEmail(ctx context.Context, email string) models.Result[models.ConfirmationMessage] {
	resp, failure := a.post(ctx, PathResendConfirmation, models.ResendConfirmationRequest{Email: email})
	if failure != nil {
		return failed[models.ConfirmationMessage](failure)
	}

	message, err := decodeStringField(resp, fieldMessage)
	if err != nil {
		return failed[models.ConfirmationMessage](a.unexpectedBody(PathResendConfirmation, resp, err))
	}

	return models.Success(models.ConfirmationMessage{Message: message})
}

// CreateAccountWithEmail implements [AuthClient].
func (a *authClient) CreateAccountWithEmail(ctx context.Context, email, password, passwordConfirmation string) models.Result[struct{}] {
	_, failure := a.post(ctx, PathSignUpEmail, models.SignUpRequest{
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	})
	if failure != nil {
		return failed[struct{}](failure)
	}

	return models.Success(struct{}{})
}

// post sends body to path and returns the response if its status is 2xx.
// Every other outcome comes back as a failure, already logged.
func (a *authClient) post(ctx context.Context, path string, body any) (*adapter.Response, *models.Failure) {
	resp, err := a.transport.PostJSON(ctx, path, body)
	if err != nil {
		failure := mapTransportError(err)
		a.logger.Warn().
			Err(err).
			Str("path", path).
			Str("code", failure.Code).
			Msg("auth request did not complete")
		return nil, failure
	}

	if !resp.OK() {
		failure := mapServerError(resp)
		a.logger.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("code", failure.Code).
			Msg("auth request rejected by server")
		return nil, failure
	}

	a.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("auth request succeeded")
	return resp, nil
}

func (a *authClient) unexpectedBody(path string, resp *adapter.Response, cause error) *models.Failure {
	failure := mapUnexpectedBody(path, resp, cause)
	a.logger.Warn().
		Err(failure.Raw).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("unexpected auth response body")
	return failure
}

func failed[T any](f *models.Failure) models.Result[T] {
	return models.Fail[T](f.Code, f.Message, f.Raw)
}
