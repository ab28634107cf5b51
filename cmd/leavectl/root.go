package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go-hris-leave/internal/config"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	companyID  string
	actorID    string
	year       int
)

var rootCmd = &cobra.Command{
	Use:   "leavectl",
	Short: "Leave management operations",
	Long:  `Runs migrations and one-shot leave setup jobs against the configured database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		apperror.Init()
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", os.Getenv("HRIS_CONFIG_FILE"), "path to the config file")

	for _, c := range []*cobra.Command{setupCmd, populateCmd} {
		c.Flags().StringVar(&companyID, "company", "", "company id")
		c.Flags().StringVar(&actorID, "actor", "", "employee id recorded as creator")
		c.Flags().IntVar(&year, "year", time.Now().Year(), "leave year")
		_ = c.MarkFlagRequired("company")
	}

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(populateCmd)
}

func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(zl)
	return cfg, zl, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	return contextutil.WithRequestID(cmd.Context(), uuid.NewString())
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
