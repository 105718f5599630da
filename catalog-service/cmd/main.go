package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "catalog-service: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog-service",
		Short: "Catalog service for blinds categories and products",
		Long: `catalog-service serves the category and product catalog over HTTP, issues
pre-signed S3 upload URLs for category images and publishes catalog events.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newBootstrapCmd(),
	)
	return cmd
}
