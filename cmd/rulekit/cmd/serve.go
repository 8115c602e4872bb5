package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/internal/app"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
)

func newServeCmd() *cobra.Command {
	var envFiles []string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation API",
		Long: `Run the HTTP server. Configuration is read from the environment
after loading the given .env files. Invalid settings are all reported
before the server starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(envFiles...)
			if err != nil {
				return err
			}

			log := app.NewLogger(cfg, cmd.OutOrStdout())
			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), app.NewRouter(log))
		},
	}

	c.Flags().StringSliceVar(&envFiles, "env-file", nil, ".env files to load, later ones win")
	return c
}
