package main

import (
	"go-hris-leave/internal/app"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Seed default leave types, write the year config and populate balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openServices()
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := svc.Setup.Run(commandContext(cmd), companyID, actorID, year)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Create missing leave balances for every active employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openServices()
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := svc.LeaveBalance.PopulateForYear(commandContext(cmd), companyID, year)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

func openServices() (*app.Services, func(), error) {
	cfg, zl, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}

	infra, err := app.OpenInfrastructure(cfg, zl, true)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.BuildServices(cfg, infra, zl)
	if err != nil {
		infra.Close()
		return nil, nil, err
	}
	return svc, func() {
		infra.Close()
		_ = zl.Sync()
	}, nil
}
