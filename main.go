package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/renato0307/lettercount/internal/cmd"
	"github.com/renato0307/lettercount/internal/version"
)

func main() {
	// Cancel in-flight downloads on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	kctx := kong.Parse(&cli,
		kong.Name("lettercount"),
		kong.Description(version.Tagline),
		kong.Vars{"version": version.Info()},
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	// Execute the selected command
	if err := kctx.Run(); err != nil {
		cmd.ReportError(os.Stderr, err, cli.LogFile())
		stop()
		os.Exit(1)
	}
}
