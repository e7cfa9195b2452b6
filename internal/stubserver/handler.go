package stubserver

import (
	"fmt"

	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/utils"
	"github.com/MKhiriev/go-auth-client/internal/validators"
)

type Handler struct {
	accounts  *accountStore
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	cfg    config.StubConfig
	logger *logger.Logger
}

func NewHandler(cfg config.StubConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("auto_confirm", cfg.AutoConfirm).Msg("stub http handler created")
	return &Handler{
		accounts:  newAccountStore(),
		validator: validators.NewAuthRequestValidator(),
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// SeedAccount registers an account directly, bypassing sign-up validation.
func (h *Handler) SeedAccount(email, password string, confirmed bool) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error seeding account: %w", err)
	}

	return h.accounts.create(email, hash, confirmed)
}

// ConfirmEmail marks the account as confirmed, as if the user followed the
// link from the confirmation e-mail.
func (h *Handler) ConfirmEmail(email string) error {
	return h.accounts.confirm(email)
}
