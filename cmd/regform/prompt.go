package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		format      string
		output      string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the registration form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, decorators, err := a.form()
			if err != nil {
				return err
			}

			prompts, err := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithForm(form),
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithMaxAttempts(maxAttempts),
			)
			if err != nil {
				return err
			}
			html, err := vanilla.New(vanilla.WithOptionsResolver(orchestrator.SelectOptions))
			if err != nil {
				return err
			}
			registry, err := render.NewRegistry(html, prompts)
			if err != nil {
				return err
			}

			orch := orchestrator.New(
				orchestrator.WithRegistry(registry),
				orchestrator.WithUIDecorators(decorators...),
			)
			session := registration.NewSession(registration.WithPhoneCode(a.cfg.Form.DefaultPhoneCode))
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Renderer: prompts.Name(),
				Fields:   session.Fields(),
			})
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, out, 0o600); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registration written to %s\n", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "output format (json, pretty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "stop after this many failed submits (0 = unlimited)")
	return cmd
}
