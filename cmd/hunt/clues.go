// Clues command for the hunt CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cluesCmd = &cobra.Command{
	Use:   "clues",
	Short: "List the clue pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWorkbook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "clues:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		pool, err := store.ReadCluePool(inputSheet())
		if err != nil {
			fmt.Fprintln(os.Stderr, "read clues:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(pool, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for i, c := range pool {
			fmt.Printf("%2d. [%s] %s -> %s\n", i+1, c.Category, c.Question, c.Answer)
		}
		return nil
	},
}
