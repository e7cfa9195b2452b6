package client

import (
	"io"

	"github.com/MKhiriev/go-auth-client/models"
	"github.com/spf13/cobra"
)

func (a *App) loginCommand() *cobra.Command {
	var (
		email     string
		password  string
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with e-mail and password and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.passwordOrPrompt(password, "Password: ")
			if err != nil {
				return err
			}

			result := a.services.AuthClient.LoginWithEmail(cmd.Context(), email, password)

			copied := false
			if copyToken && result.IsSuccess() {
				if err = a.clipboard.WriteAll(result.Data().String()); err != nil {
					a.logger.Warn().Err(err).Msg("copy to clipboard failed")
					renderWarning(a.errOut, "could not copy the token to the clipboard: "+err.Error())
				} else {
					copied = true
				}
			}

			return render(a, result, func(w io.Writer, token models.AuthToken) {
				renderLogin(w, token, copied)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account e-mail")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	cmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the session token to the clipboard")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) signUpCommand() *cobra.Command {
	var (
		email                string
		password             string
		passwordConfirmation string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account with e-mail and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				if password, err = a.passwordOrPrompt("", "Password: "); err != nil {
					return err
				}
				if passwordConfirmation == "" {
					if passwordConfirmation, err = a.passwordOrPrompt("", "Confirm password: "); err != nil {
						return err
					}
				}
			}
			if passwordConfirmation == "" {
				passwordConfirmation = password
			}

			result := a.services.AuthClient.CreateAccountWithEmail(cmd.Context(), email, password, passwordConfirmation)

			return render(a, result, func(w io.Writer, _ struct{}) {
				renderSignUp(w, email)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account e-mail")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&passwordConfirmation, "password-confirmation", "", "Password confirmation (defaults to --password)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) resendConfirmationCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend-confirmation",
		Short: "Send the account confirmation e-mail again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.services.AuthClient.ResendConfirmationEmail(cmd.Context(), email)

			return render(a, result, func(w io.Writer, msg models.ConfirmationMessage) {
				renderConfirmation(w, msg)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account e-mail")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) passwordOrPrompt(password, prompt string) (string, error) {
	if password != "" {
		return password, nil
	}

	password, err := a.passwords.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	return password, nil
}
