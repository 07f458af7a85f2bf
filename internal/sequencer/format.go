package sequencer

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// Table headers.
var (
	masterHeader = []string{"Group", "Clue Number", "Question", "Location", "Next Clue"}
	groupHeader  = []string{"Location", "Clue"}
)

// MasterTable projects every group's sequence into the organizer's table:
// a fixed header, then one row per (group, step), groups in ascending
// order. The projection is pure and order-preserving.
func MasterTable(sequences map[int]types.GroupSequence) [][]string {
	rows := [][]string{masterHeader}
	for _, group := range sortedGroups(sequences) {
		label := fmt.Sprintf("Group %d", group)
		for _, step := range sequences[group] {
			rows = append(rows, []string{
				label,
				strconv.Itoa(step.StepIndex),
				step.Question,
				step.HidingInstruction,
				step.NextClueLabel,
			})
		}
	}
	return rows
}

// GroupTable projects one group's sequence into its printable sheet: a
// header, the first-clue announcement row handed to the group at the
// start, then one row per hidden clue.
func GroupTable(group int, seq types.GroupSequence) [][]string {
	rows := [][]string{groupHeader}
	if len(seq) > 0 {
		rows = append(rows, []string{
			fmt.Sprintf("Group %d First Clue", group),
			fmt.Sprintf("1. %s", seq[0].Question),
		})
	}
	for _, step := range seq {
		rows = append(rows, []string{step.HidingInstruction, step.NextClueLabel})
	}
	return rows
}

// sortedGroups returns the map's group indexes in ascending order so the
// emitted tables are deterministic.
func sortedGroups(sequences map[int]types.GroupSequence) []int {
	groups := make([]int, 0, len(sequences))
	for g := range sequences {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	return groups
}
