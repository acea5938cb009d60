package main

import (
	"net/http"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Shows the service's health and configuration presence",
	RunE: func(_ *cobra.Command, _ []string) error {
		return callService(http.MethodGet, "/api/health", nil)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(healthCmd)
}
