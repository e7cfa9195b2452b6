package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-auth-client/internal/adapter"
	"github.com/MKhiriev/go-auth-client/internal/config"
	"github.com/MKhiriev/go-auth-client/internal/logger"
	"github.com/MKhiriev/go-auth-client/internal/service"
	"github.com/MKhiriev/go-auth-client/internal/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const loggerRole = "go-auth-client"

// BuildInfo is printed by --version. Empty fields are shown as "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", orNA(b.Version), orNA(b.Date), orNA(b.Commit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

type App struct {
	newServices ServicesFactory
	clipboard   Clipboard
	passwords   PasswordReader

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	build  BuildInfo

	// set while a command line is being executed
	flags      *config.Flags
	jsonOutput bool
	services   *service.ClientServices
	logger     *logger.Logger
}

// Option configures an [App].
type Option func(*App)

// WithServicesFactory replaces [NewServices].
func WithServicesFactory(f ServicesFactory) Option {
	return func(a *App) { a.newServices = f }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func WithPasswordReader(r PasswordReader) Option {
	return func(a *App) { a.passwords = r }
}

// WithIO sets the streams used for prompts and output.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

func WithBuildInfo(b BuildInfo) Option {
	return func(a *App) { a.build = b }
}

// NewApp returns the authclient application. Without options it talks to the
// configured auth API over HTTP and uses the process's standard streams.
func NewApp(opts ...Option) *App {
	a := &App{
		newServices: NewServices,
		clipboard:   systemClipboard{},
		in:          os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.passwords == nil {
		a.passwords = newTermPasswordReader(a.in, a.errOut)
	}

	return a
}

// NewServices builds the client services on top of the HTTP transport.
func NewServices(cfg *config.ClientConfig, logger *logger.Logger) (*service.ClientServices, error) {
	transport, err := adapter.NewHTTPTransport(cfg.Adapter, logger.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	return service.NewClientServices(transport, logger), nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	defer a.closeLogger()

	return cmd.ExecuteContext(ctx)
}

// closeLogger releases the log file opened by setup, if any.
func (a *App) closeLogger() {
	if a.logger == nil {
		return
	}
	if err := a.logger.Close(); err != nil {
		fmt.Fprintf(a.errOut, "authclient: %v\n", err)
	}
	a.logger = nil
}

// Command returns the root cobra command with all subcommands attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "authclient",
		Short:             "Log in, sign up and resend confirmation e-mails against the auth API",
		Version:           a.build.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.flags = config.BindClientFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Print the result as JSON")

	root.AddCommand(
		a.loginCommand(),
		a.signUpCommand(),
		a.resendConfirmationCommand(),
	)

	return root
}

// setup loads the configuration, creates the logger and the services, and
// attaches a fresh trace ID to the command context.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(a.flags.Config())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.NewClientLogger(loggerRole, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	traceID := utils.NewUUIDGenerator().Generate()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	log.Debug().Any("config", cfg).Str("command", cmd.Name()).Msg("received configs")

	services, err := a.newServices(cfg, log)
	if err != nil {
		_ = log.Close()
		return fmt.Errorf("error creating services: %w", err)
	}

	a.logger = log
	a.services = services
	cmd.SetContext(utils.WithTraceID(log.WithContext(cmd.Context()), traceID))

	return nil
}
