package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check tool driver status",
	Long: `Queries the tool driver server for its current state.

Prints the numeric state code, the uptime in seconds and, if the server
reports one, its error message.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("Checking server status...")

	status, err := client.GetStatus(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Server Status:")
	fmt.Printf("  State:  %d (3=READY)\n", status.Status)
	fmt.Printf("  Uptime: %d seconds\n", status.Uptime)
	if status.ErrorMessage != "" {
		fmt.Printf("  Error:  %s\n", status.ErrorMessage)
	}

	return nil
}
