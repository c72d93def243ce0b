package cmd

import (
	"fmt"

	"github.com/promptsmith/guidectl/internal/guideline"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [target]",
	Short: "Re-fetch the guideline document and refresh installed copies",
	Long:  `Fetches the canonical guideline document and overwrites each recorded install (or the given target) with the current text. Running update twice yields the same result as running it once.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := fetchDocument(cmd.Context(), effectiveSource())
		if err != nil {
			return err
		}

		var targets []string
		if len(args) > 0 {
			targets = []string{args[0]}
		} else {
			m, err := loadManifest()
			if err != nil {
				return err
			}
			targets = m.Targets()
			if len(targets) == 0 {
				fmt.Println("(no installs recorded)")
				return nil
			}
		}

		for _, target := range targets {
			if err := guideline.Install(doc, target, guideline.ModeCreate, true); err != nil {
				return fmt.Errorf("update %s: %w", target, err)
			}
			recordInstall(doc, target)
			fmt.Printf("✓ Updated %s\n", target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
