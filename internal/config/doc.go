// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the command-line client and
// [GetStubConfig] for the local stub auth server. Flags are registered on a
// caller-owned [pflag.FlagSet] via [BindClientFlags] or [BindStubFlags].
package config
