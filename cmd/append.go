package cmd

import (
	"fmt"

	"github.com/promptsmith/guidectl/internal/guideline"
	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append [target]",
	Short: "Append the guideline document to an existing target file",
	Long:  `Fetches the guideline document and appends it after the target file's existing contents, separated by a blank line. A missing or empty target receives the document as-is.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := resolveTarget(args)
		uri := effectiveSource()
		doc, err := fetchDocument(cmd.Context(), uri)
		if err != nil {
			return err
		}
		if err := guideline.Install(doc, target, guideline.ModeAppend, false); err != nil {
			return err
		}
		recordInstall(doc, target)
		fmt.Printf("✓ Guidelines appended to %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appendCmd)
}
