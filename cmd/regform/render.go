package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	regform "github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the empty registration form page as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, decorators, err := a.form()
			if err != nil {
				return err
			}

			session := registration.NewSession(registration.WithPhoneCode(a.cfg.Form.DefaultPhoneCode))
			html, err := regform.GenerateHTML(cmd.Context(), session.Fields(), nil,
				orchestrator.WithUIDecorators(decorators...),
			)
			if err != nil {
				return fmt.Errorf("render form: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, html, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Form written to %s\n", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
