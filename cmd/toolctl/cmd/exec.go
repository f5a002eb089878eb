package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	execScript   string
	execBlocking bool
)

var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Execute a Python script on the tool server",
	Long: `Sends a Python script to the toolbox virtual tool and prints the
decoded result. With --blocking (the default) the server waits for the
script to finish before replying.`,
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVar(&execScript, "script", "", "Python script to execute")
	execCmd.Flags().BoolVar(&execBlocking, "blocking", true, "Wait for script completion")
	execCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("Executing Python script...")
	fmt.Println()

	result, err := client.RunScript(cmd.Context(), execScript, execBlocking)
	if err != nil {
		return err
	}

	fmt.Printf("Output:\n%s\n", result)
	return nil
}
