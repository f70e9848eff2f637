package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/opendata-swiss/geocat-crosswalk/vocabulary"
)

var vocabulariesCmd = &cobra.Command{
	Use:   "vocabularies",
	Short: "Show the loaded reference data",
	Long:  `Load the embedded reference data and print the size of each dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, err := vocabulary.Load()
		if err != nil {
			return fmt.Errorf("loading vocabularies: %w", err)
		}
		summary := vocab.Summary()
		names := make([]string, 0, len(summary))
		for name := range summary {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "%-24s %d\n", name, summary[name])
		}
		return nil
	},
}
