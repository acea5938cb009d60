package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	retryConversationID string
	retryRow            int
	retryCandidateName  string
)

var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Re-checks a video conversation whose transcript was not ready",
	RunE: func(_ *cobra.Command, _ []string) error {
		if retryConversationID == "" {
			return fmt.Errorf("--conversation is required")
		}
		return callService(http.MethodPost, "/api/whaleagent-retry", map[string]any{
			"conversationId": retryConversationID,
			"rowNumber":      retryRow,
			"candidateName":  retryCandidateName,
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	retryCmd.Flags().StringVar(&retryConversationID, "conversation", "", "Video conversation ID")
	retryCmd.Flags().IntVar(&retryRow, "row", 0, "Call Queue row of the candidate, when known")
	retryCmd.Flags().StringVar(&retryCandidateName, "candidate", "", "Candidate name, when known")
	rootCmd.AddCommand(retryCmd)
}
