// Init command for the hunt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workbook and seed a sample clue sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWorkbook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		sheet := inputSheet()
		seeded, err := store.SeedSampleClues(sheet)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed clues:", err)
			os.Exit(exitSysError)
		}

		if seeded {
			fmt.Printf("Created sample %q sheet with example clues\n", sheet)
			fmt.Println("Populate it with your own clues, then run: hunt generate --groups N")
		} else {
			fmt.Printf("Sheet %q already has clues; nothing to do\n", sheet)
		}
		return nil
	},
}
