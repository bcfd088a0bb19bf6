package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/gestion/internal/app"
	"github.com/jask/gestion/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := new(config.Config)

	cmd := &cobra.Command{
		Use:           "gestion",
		Short:         "Admin console for Areas and Programas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv("GESTION_CONFIG", configPath); err != nil {
					return err
				}
			}
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			*cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, *cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (overrides $GESTION_CONFIG)")
	cmd.AddCommand(newListCmd(cfg), newMigrateCmd(cfg))
	return cmd
}

func runTUI(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := tea.NewProgram(a.Model(config.KeybindingsPath()), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if !cfg.Store.Autosave {
		return a.Save(ctx)
	}
	return nil
}
