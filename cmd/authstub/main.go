package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/stubserver"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "authstub: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var seed []string

	cmd := &cobra.Command{
		Use:          "authstub",
		Short:        "Run an in-memory auth API for local development",
		Version:      fmt.Sprintf("%s (built %s, commit %s)", orNA(buildVersion), orNA(buildDate), orNA(buildCommit)),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := config.BindStubFlags(cmd.Flags())
	cmd.Flags().StringSliceVar(&seed, "seed", nil, "Confirmed accounts to create on start, as email:password")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStubConfig(flags.Config())
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		log, err := logger.NewClientLogger("auth-stub", cfg.Log.Level, cfg.Log.File)
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		defer func() { _ = log.Close() }()

		handler := stubserver.NewHandler(*cfg, log)
		for _, account := range seed {
			email, password, ok := cutAccount(account)
			if !ok {
				return fmt.Errorf("invalid --seed value %q, want email:password", account)
			}
			if err = handler.SeedAccount(email, password, true); err != nil {
				return err
			}
			log.Info().Str("email", email).Msg("account seeded")
		}

		return stubserver.NewServer(handler, *cfg, log).Run(cmd.Context())
	}

	return cmd
}

// cutAccount splits "email:password" at the first colon.
func cutAccount(s string) (email, password string, ok bool) {
	email, password, ok = strings.Cut(s, ":")
	return email, password, ok && email != "" && password != ""
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
