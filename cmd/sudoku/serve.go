package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sudoku_variants_go/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if env := os.Getenv("SUDOKU_ADDR"); env != "" && !cmd.Flags().Changed("addr") {
				addr = env
			}
			slog.Info("listening", "addr", addr)
			return server.New().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
