package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the guideline document and print it to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := fetchDocument(cmd.Context(), effectiveSource())
		if err != nil {
			return err
		}
		fmt.Print(doc.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
