package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-regform/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registration form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, decorators, err := a.form()
			if err != nil {
				return err
			}

			srv, err := server.New(a.cfg, a.logger, server.WithDecorators(decorators...))
			if err != nil {
				return err
			}
			a.logger.Info("starting regform",
				zap.String("version", version),
				zap.Duration("navigation_ttl", a.cfg.Navigation.TTL),
			)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
