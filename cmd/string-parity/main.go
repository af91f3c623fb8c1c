// Package main checks Android string resources for key and placeholder
// parity against the default locale.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/string-parity/internal/platform/cmd"
	"github.com/louisbranch/string-parity/internal/platform/config"
	"github.com/louisbranch/string-parity/internal/tools/stringparity"
)

func main() {
	cfg, err := stringparity.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[STRING-PARITY] ")

	status, err := entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceStringParity, func(ctx context.Context) (int, error) {
		return stringparity.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("%v", err)
	}
	os.Exit(status)
}
