package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/pkg/openapi"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document for the registration API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, _, err := a.form()
			if err != nil {
				return err
			}
			raw, err := openapi.JSON(cmd.Context(),
				openapi.WithTitle(form.Summary+" API"),
				openapi.WithServer(server),
				openapi.WithAPIVersion(version),
			)
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				return err
			}
			pretty.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(pretty.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL to advertise")
	return cmd
}
