package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-client/internal/client"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := client.NewApp(client.WithBuildInfo(client.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}))

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		// failures of the operation itself are already printed
		if !errors.Is(err, client.ErrOperationFailed) {
			fmt.Fprintf(os.Stderr, "authclient: %v\n", err)
		}
		os.Exit(1)
	}
}
