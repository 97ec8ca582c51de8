package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Child Immunization Tracker API
// @version 1.0
// @description Calendario de vacunación infantil, avisos y cobertura.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:           "immunization-tracker",
		Short:         "Child immunization tracker API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
