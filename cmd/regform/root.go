package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-regform/internal/config"
	"github.com/goliatone/go-regform/internal/logging"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/uischema"
)

// app carries what the subcommands share once configuration is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
	out     io.Writer
	// driver overrides the interactive prompt driver; nil uses survey.
	driver tui.PromptDriver
}

func newApp(out io.Writer) *app {
	return &app{v: viper.New(), out: out}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "regform",
		Short:         "Registration form with inline validation",
		Long:          `Serves the registration form over HTTP or collects it interactively in the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+config.DefaultConfigFile+" when present)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(a), newPromptCmd(a), newRenderCmd(a), newOpenAPICmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// form returns the registration form with the configured ui overlay applied.
func (a *app) form() (model.FormModel, []model.Decorator, error) {
	form := registration.Form()

	store, err := uischema.Load(a.cfg.Form.UISchema)
	if err != nil {
		return model.FormModel{}, nil, fmt.Errorf("load ui schema: %w", err)
	}
	decorators := []model.Decorator{uischema.NewDecorator(store)}
	for _, decorator := range decorators {
		if err := decorator.Decorate(&form); err != nil {
			return model.FormModel{}, nil, fmt.Errorf("decorate form: %w", err)
		}
	}
	return form, decorators, nil
}
