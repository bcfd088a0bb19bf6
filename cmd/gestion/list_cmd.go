package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/gestion/internal/app"
	"github.com/jask/gestion/internal/config"
	"github.com/jask/gestion/internal/entity"
	"github.com/jask/gestion/internal/logging"
)

func newListCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "list <areas|programas>",
		Short:     "Print a stored collection",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"areas", "programas"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Store.Path == "" {
				return fmt.Errorf("store.path is not set; nothing is persisted")
			}
			a, err := app.New(cmd.Context(), *cfg, app.WithLogger(logging.Console(logging.ParseLevel(cfg.Log.Level), os.Stderr)))
			if err != nil {
				return err
			}
			defer a.Close()

			var (
				items   any
				headers []string
				rows    [][]string
			)
			switch args[0] {
			case "areas":
				list := a.Areas.Items()
				if list == nil {
					list = []entity.Area{}
				}
				items, headers = list, []string{"ID", "Nombre", "Sede"}
				for _, it := range list {
					rows = append(rows, []string{strconv.Itoa(it.IDArea), it.Nombre, it.Sede})
				}
			case "programas":
				list := a.Programas.Items()
				if list == nil {
					list = []entity.Programa{}
				}
				items, headers = list, []string{"ID", "Nombre", "Tipo"}
				for _, it := range list {
					rows = append(rows, []string{strconv.Itoa(it.IDPrograma), it.Nombre, strconv.Itoa(it.Tipo)})
				}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(headers...).
				Rows(rows...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
