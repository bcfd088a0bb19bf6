package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/gestion/internal/config"
	"github.com/jask/gestion/internal/database"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the snapshot database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Store.Path == "" {
				return fmt.Errorf("store.path is not set")
			}
			if err := database.RunMigrations(cfg.Store.Path); err != nil {
				return err
			}
			db, err := database.Open(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			version, dirty, err := database.Version(db)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: schema version %d (dirty=%v)\n", cfg.Store.Path, version, dirty)
			return err
		},
	}
}
