package stubserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-auth-client/internal/app"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/utils"
	"github.com/MKhiriev/go-auth-client/internal/validators"
	"github.com/MKhiriev/go-auth-client/models"
)

func (h *Handler) loginWithEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	acc, err := h.accounts.get(req.Email)
	if err != nil || !utils.CheckPassword(acc.passwordHash, req.Password) {
		log.Debug().Str("email", req.Email).Msg("no account was found/wrong password")
		_, _ = utils.WriteError(w, http.StatusUnauthorized, CodeInvalidCredentials, app.MsgInvalidCredentials)
		return
	}

	if !acc.confirmed {
		log.Debug().Str("email", acc.email).Msg("login attempt before confirmation")
		_, _ = utils.WriteError(w, http.StatusForbidden, CodeEmailNotConfirmed, app.MsgEmailNotConfirmed)
		return
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, acc.email, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		_, _ = utils.WriteError(w, http.StatusInternalServerError, CodeInternalError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Info().Str("email", acc.email).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, map[string]string{"token": token}, http.StatusOK)
}

func (h *Handler) resendConfirmation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResendConfirmationRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	acc, err := h.accounts.get(req.Email)
	if err != nil {
		log.Debug().Str("email", req.Email).Msg("resend for unknown account")
		_, _ = utils.WriteError(w, http.StatusNotFound, CodeAccountNotFound, app.MsgAccountNotFound)
		return
	}

	if acc.confirmed {
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, CodeAlreadyConfirmed, app.MsgAlreadyConfirmed)
		return
	}

	log.Info().Str("email", acc.email).Str("link", confirmationLink(acc.email)).Msg("confirmation email resent")
	_, _ = utils.WriteJSON(w, models.ConfirmationMessage{
		Message: fmt.Sprintf(app.MsgConfirmationSent, acc.email),
	}, http.StatusOK)
}

func (h *Handler) signUpEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		_, _ = utils.WriteError(w, http.StatusInternalServerError, CodeInternalError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if err = h.accounts.create(req.Email, hash, h.cfg.AutoConfirm); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			log.Debug().Str("email", req.Email).Msg("email already taken")
			_, _ = utils.WriteError(w, http.StatusConflict, CodeEmailTaken, app.MsgEmailTaken)
			return
		}
		log.Err(err).Msg("unexpected error occurred during sign up")
		_, _ = utils.WriteError(w, http.StatusInternalServerError, CodeInternalError, http.StatusText(http.StatusInternalServerError))
		return
	}

	email := normalizeEmail(req.Email)
	if h.cfg.AutoConfirm {
		log.Info().Str("email", email).Msg("account created")
	} else {
		log.Info().Str("email", email).Str("link", confirmationLink(email)).Msg("account created, confirmation pending")
	}
	w.WriteHeader(http.StatusCreated)
}

// confirmEmail serves the link of the confirmation e-mail. The stub sends no
// mail; the link is written to the log on sign-up and resend.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, CodeInvalidParams, app.MsgEmailParamRequired)
		return
	}

	if err := h.ConfirmEmail(email); err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			log.Debug().Str("email", email).Msg("confirmation for unknown account")
			_, _ = utils.WriteError(w, http.StatusNotFound, CodeAccountNotFound, app.MsgAccountNotFound)
		case errors.Is(err, ErrAlreadyConfirmed):
			_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, CodeAlreadyConfirmed, app.MsgAlreadyConfirmed)
		default:
			log.Err(err).Msg("unexpected error occurred during confirmation")
			_, _ = utils.WriteError(w, http.StatusInternalServerError, CodeInternalError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	email = normalizeEmail(email)
	log.Info().Str("email", email).Msg("email confirmed")
	_, _ = utils.WriteJSON(w, models.ConfirmationMessage{
		Message: fmt.Sprintf(app.MsgEmailConfirmed, email),
	}, http.StatusOK)
}

// confirmationLink returns the path of the confirmation endpoint for email.
func confirmationLink(email string) string {
	return confirmPath + "?" + url.Values{"email": {email}}.Encode()
}

// decodeRequest decodes the JSON request body into dst and validates it. On
// failure it writes the error response and returns false.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteError(w, http.StatusBadRequest, CodeInvalidJSON, app.MsgInvalidJSON)
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		log.Debug().Err(err).Msg("invalid data provided")
		code, msg := mapValidationError(err)
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, code, msg)
		return false
	}

	return true
}

func mapValidationError(err error) (code, message string) {
	switch {
	case errors.Is(err, validators.ErrPasswordMismatch):
		return CodePasswordMismatch, app.MsgPasswordMismatch
	case errors.Is(err, validators.ErrEmptyEmail):
		return CodeInvalidParams, app.MsgEmailRequired
	case errors.Is(err, validators.ErrInvalidEmail):
		return CodeInvalidParams, app.MsgInvalidEmail
	case errors.Is(err, validators.ErrEmptyPassword):
		return CodeInvalidParams, app.MsgPasswordRequired
	case errors.Is(err, validators.ErrPasswordTooLong):
		return CodeInvalidParams, fmt.Sprintf(app.MsgPasswordTooLong, validators.MaxPasswordBytes)
	default:
		return CodeInvalidParams, err.Error()
	}
}
