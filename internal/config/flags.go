package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flags collects command-line values registered on a [pflag.FlagSet]. Call
// [Flags.Config] after the flag set has been parsed.
type Flags struct {
	cfg         StructuredConfig
	stubAddress NetAddress
}

// BindClientFlags registers the client flags on fs.
//
// Flags:
//
//	-a/--address     auth API base URL
//	--timeout        request timeout (e.g. "10s")
//	--user-agent     User-Agent header value
//	--log-level      zerolog level name
//	--log-file       log file path (stderr when empty)
//	-c/--config      JSON config file path
func BindClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.cfg.Adapter.HTTPAddress, "address", "a", "", "Auth API base URL")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&f.cfg.Adapter.UserAgent, "user-agent", "", "User-Agent header value")
	bindCommonFlags(fs, f)

	return f
}

// BindStubFlags registers the stub server flags on fs.
//
// Flags:
//
//	-l/--listen        listen address in format [host]:[port]
//	--token-sign-key   HS256 signing key
//	--token-issuer     token issuer name
//	--token-duration   token lifetime (e.g. "1h")
//	--auto-confirm     confirm accounts on sign-up
//	--log-level        zerolog level name
//	--log-file         log file path
//	-c/--config        JSON config file path
func BindStubFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.stubAddress, "listen", "l", "Net address host:port")
	fs.StringVar(&f.cfg.Stub.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&f.cfg.Stub.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&f.cfg.Stub.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.BoolVar(&f.cfg.Stub.AutoConfirm, "auto-confirm", false, "Confirm accounts on sign-up")
	bindCommonFlags(fs, f)

	return f
}

func bindCommonFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
}

// Config returns the parsed flag values as a [StructuredConfig] whose unset
// fields are zero.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Stub.HTTPAddress = f.stubAddress.String()
	return &cfg
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
