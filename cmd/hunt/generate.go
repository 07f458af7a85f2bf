// Generate command for the hunt CLI.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hunt/internal/sequencer"
	"github.com/mesh-intelligence/hunt/internal/sheets"
)

var (
	generateGroups int
	generateSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate clue sequences for each group and write them to the workbook",
	Long: `Generate reads the clue pool, produces one ordered clue sequence per
group subject to the cross-group constraints, and overwrites the Master
table plus one table per group in the workbook.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateGroups < 1 {
			fmt.Fprintln(os.Stderr, "generate: --groups must be at least 1")
			os.Exit(exitUserError)
		}

		store, err := openWorkbook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		pool, err := store.ReadCluePool(inputSheet())
		if err != nil {
			fmt.Fprintln(os.Stderr, "read clues:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Found %d clues\n", len(pool))

		seeded := cmd.Flags().Changed("seed")
		seed := generateSeed
		if !seeded {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		fmt.Printf("Generating hunt for %d groups...\n", generateGroups)
		sequences, err := sequencer.Generate(pool, generateGroups, rng)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate:", err)
			os.Exit(exitUserError)
		}

		if err := store.WriteTable("Master", sequencer.MasterTable(sequences)); err != nil {
			fmt.Fprintln(os.Stderr, "write master table:", err)
			os.Exit(exitSysError)
		}
		for group := 1; group <= generateGroups; group++ {
			name := fmt.Sprintf("Group %d", group)
			if err := store.WriteTable(name, sequencer.GroupTable(group, sequences[group])); err != nil {
				fmt.Fprintf(os.Stderr, "write %s table: %s\n", name, err)
				os.Exit(exitSysError)
			}
		}

		if _, err := store.RecordRun(sheets.Run{
			Seed:       seed,
			Seeded:     seeded,
			GroupCount: generateGroups,
			ClueCount:  len(pool),
		}); err != nil {
			fmt.Fprintln(os.Stderr, "record run:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(sequences, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println("Scavenger hunt generated successfully!")
		fmt.Println("Print the Master table for the organizer; each Group table lists")
		fmt.Println("where to hide that group's clues and hands the first row to the group.")
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateGroups, "groups", 0, "number of groups (required)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed for reproducible results")

	generateCmd.MarkFlagRequired("groups")
}
