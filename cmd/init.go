package cmd

import (
	"fmt"

	"github.com/promptsmith/guidectl/internal/guideline"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [target]",
	Short: "Write the guideline document to a new target file",
	Long:  `Fetches the guideline document and writes it as the full contents of the target file (CLAUDE.md by default). Refuses to overwrite an existing file with content unless --force is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := resolveTarget(args)
		uri := effectiveSource()
		doc, err := fetchDocument(cmd.Context(), uri)
		if err != nil {
			return err
		}
		if err := guideline.Install(doc, target, guideline.ModeCreate, initForce); err != nil {
			return err
		}
		recordInstall(doc, target)
		fmt.Printf("✓ Guidelines written to %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite the target even if it has content")
}
