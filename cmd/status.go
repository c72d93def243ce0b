package cmd

import (
	"fmt"

	"github.com/promptsmith/guidectl/internal/guideline"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [target]",
	Short: "Compare installed guideline files against the canonical source",
	Long:  `Fetches the canonical guideline document and reports for each recorded install (or the given target) whether the local file is up-to-date, locally modified, or missing.`,
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
			state, err := guideline.Compare(target, doc)
			if err != nil {
				return err
			}
			switch state {
			case guideline.StateUpToDate:
				fmt.Printf("✓ %s: up-to-date\n", target)
			case guideline.StateModified:
				fmt.Printf("⚠ %s: modified locally\n", target)
			case guideline.StateMissing:
				fmt.Printf("✗ %s: missing\n", target)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
