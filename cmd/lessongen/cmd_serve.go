package main

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/lessongen/internal/app"
	"github.com/yungbote/lessongen/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(cmd.Context())
}
