package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passgen/internal/api"
	"github.com/dmitrymomot/passgen/pkg/httpserver"
	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/requestid"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Long: `serve exposes POST /v1/passwords, GET /v1/phonetic and GET /healthz.
Request bodies default to the PASSGEN_* settings. The server stops on
SIGINT or SIGTERM.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = addr
			}
			defaults, err := cfg.Request()
			if err != nil {
				return err
			}

			log, err := newLogger(cfg, root.verbose, cmd.ErrOrStderr(),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			if err != nil {
				return err
			}

			gen := passgen.New(passgen.WithLogger(log))
			handler := api.New(gen,
				api.WithLogger(log),
				api.WithDefaults(defaults),
			).Routes()

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides PASSGEN_HTTP_ADDR)")
	return cmd
}
