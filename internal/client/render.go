package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-auth-client/models"
)

// render prints result, as JSON when --json is set, and maps a failure to
// [ErrOperationFailed].
func render[T any](a *App, result models.Result[T], success func(w io.Writer, data T)) error {
	switch {
	case a.jsonOutput:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	case result.IsSuccess():
		success(a.out, result.Data())
	default:
		renderFailure(a.errOut, result.Failure())
	}

	if failure := result.Failure(); failure != nil {
		a.logger.Debug().
			Err(failure.Raw).
			Str("code", failure.Code).
			Msg("operation failed")
		return ErrOperationFailed
	}

	return nil
}

func renderLogin(w io.Writer, token models.AuthToken, copied bool) {
	fmt.Fprintln(w, successStyle.Render("Logged in"))
	fmt.Fprintln(w, tokenBoxStyle.Render(token.String()))

	// opaque tokens are printed as is
	if claims, err := token.Claims(); err == nil {
		if claims.Subject != "" {
			fmt.Fprintln(w, labelStyle.Render("Subject")+claims.Subject)
		}
		if claims.Issuer != "" {
			fmt.Fprintln(w, labelStyle.Render("Issuer")+claims.Issuer)
		}
		if claims.ExpiresAt != nil {
			fmt.Fprintln(w, labelStyle.Render("Expires")+claims.ExpiresAt.Time.Local().Format(time.RFC1123))
		}
	}

	if copied {
		fmt.Fprintln(w, helpStyle.Render("Token copied to the clipboard."))
	}
}

func renderSignUp(w io.Writer, email string) {
	fmt.Fprintln(w, successStyle.Render("Account created"))
	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("Check %s for the confirmation e-mail before logging in.", email)))
}

func renderConfirmation(w io.Writer, msg models.ConfirmationMessage) {
	fmt.Fprintln(w, successStyle.Render("Confirmation e-mail requested"))
	if msg.Message != "" {
		fmt.Fprintln(w, msg.Message)
	}
}

func renderFailure(w io.Writer, failure *models.Failure) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+failure.Message))
	fmt.Fprintln(w, labelStyle.Render("Code")+failure.Code)
}

func renderWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render("Warning: "+msg))
}
