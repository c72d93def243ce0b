package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded guideline installs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest()
		if err != nil {
			return err
		}
		if len(m.Entries) == 0 {
			fmt.Println("(no installs recorded)")
			return nil
		}
		for _, target := range m.Targets() {
			e := m.Entries[target]
			fmt.Printf("- %s (source: %s, updated: %s)\n", e.Target, e.SourceURI, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
