// Runs command for the hunt CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWorkbook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "runs:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list runs:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded")
			return nil
		}
		for _, r := range runs {
			seed := "-"
			if r.Seeded {
				seed = strconv.FormatInt(r.Seed, 10)
			}
			fmt.Printf("%s  groups=%d clues=%d seed=%s  %s\n",
				r.CreatedAt.Format(time.RFC3339), r.GroupCount, r.ClueCount, seed, r.RunID)
		}
		return nil
	},
}
