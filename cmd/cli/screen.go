package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	screenName       string
	screenPhone      string
	screenRow        int
	screenJobOrderID string
	screenJobTitle   string
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Starts an automated phone screening call for a candidate",
	RunE: func(_ *cobra.Command, _ []string) error {
		if screenName == "" || screenPhone == "" {
			return fmt.Errorf("both --name and --phone are required")
		}
		return callService(http.MethodPost, "/api/zebraagent-trigger", map[string]any{
			"name":       screenName,
			"phone":      screenPhone,
			"row":        screenRow,
			"jobOrderId": screenJobOrderID,
			"jobTitle":   screenJobTitle,
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	screenCmd.Flags().StringVar(&screenName, "name", "", "Candidate name")
	screenCmd.Flags().StringVar(&screenPhone, "phone", "", "Candidate phone number")
	screenCmd.Flags().IntVar(&screenRow, "row", 0, "Call Queue row of the candidate")
	screenCmd.Flags().StringVar(&screenJobOrderID, "job-order", "", "Job order ID to screen against")
	screenCmd.Flags().StringVar(&screenJobTitle, "job-title", "", "Job title shown to the candidate")
	rootCmd.AddCommand(screenCmd)
}
