package main

import (
	"go-hris-leave/internal/shared/connection"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zl, err := loadRuntime()
		if err != nil {
			return err
		}
		defer zl.Sync()

		gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
		if err != nil {
			return err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		return connection.RunMigrations(sqlDB, zl)
	},
}
