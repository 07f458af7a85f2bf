// Package sequencer generates per-group scavenger-hunt clue orderings from
// a shared pool, enforcing cross-group uniqueness of first clues and
// adjacent pairs plus a soft person/place alternation heuristic.
package sequencer

import (
	"math/rand"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// maxAttempts bounds the generate-and-test search per group.
const maxAttempts = 100

// Generate produces one ordered sequence per group from the shared pool.
// The last pool clue is the shared final step for every group; the
// remaining clues are permuted per group. Groups are generated
// sequentially: each group's candidate orderings are validated against the
// ledger built by all earlier groups, so every group starts with a fresh
// first clue and no two groups share an adjacent ordered pair.
//
// The caller owns the randomness source; seed rng for reproducible runs.
// Duplicate question text in the pool is undefined input: the ledger keys
// by question, so duplicates make the constraints over-broad.
//
// Returns ErrGroupCountInvalid or ErrInsufficientClues for bad input, and
// *types.UnsatisfiableError when a group exhausts its attempt budget.
func Generate(pool []types.Clue, groups int, rng *rand.Rand) (map[int]types.GroupSequence, error) {
	if groups < 1 {
		return nil, types.ErrGroupCountInvalid
	}
	if len(pool) < 2 {
		return nil, types.ErrInsufficientClues
	}

	finalClue := pool[len(pool)-1]
	randomizable := pool[:len(pool)-1]

	ledger := NewLedger()
	sequences := make(map[int]types.GroupSequence, groups)

	for group := 1; group <= groups; group++ {
		order := attempt(randomizable, ledger, rng)
		if order == nil {
			return nil, &types.UnsatisfiableError{Group: group, Attempts: maxAttempts}
		}
		ledger.Record(order)
		sequences[group] = materialize(order, finalClue)
	}

	return sequences, nil
}

// attempt searches for an ordering of the randomizable clues that passes
// the ledger constraints. Each attempt tries the alternating builder
// first; when the builder yields no candidate or its candidate is
// rejected, a uniform shuffle is tried against the same budget. Returns
// nil when the budget is exhausted.
func attempt(clues []types.Clue, ledger *Ledger, rng *rand.Rand) []types.Clue {
	for i := 0; i < maxAttempts; i++ {
		order := alternatingOrder(clues, rng)
		if order != nil && !violatesConstraints(order, ledger) {
			return order
		}

		order = append([]types.Clue(nil), clues...)
		shuffle(order, rng)
		if !violatesConstraints(order, ledger) {
			return order
		}
	}
	return nil
}

// violatesConstraints rejects an ordering that reuses another group's
// first clue, starts with a person clue, repeats a committed adjacent
// pair, or breaks alternation in more than half of its positions.
func violatesConstraints(order []types.Clue, ledger *Ledger) bool {
	if ledger.usedFirst(order[0].Question) {
		return true
	}
	if order[0].Typed() && order[0].Category != types.CategoryPlace {
		return true
	}
	for i := 0; i < len(order)-1; i++ {
		if ledger.usedPair(order[i], order[i+1]) {
			return true
		}
	}
	return brokenAlternation(order)
}

// brokenAlternation reports whether more than half of the ordering's
// adjacent positions pair two typed clues of the same type. Pairs
// involving untyped clues are ignored, and orderings with fewer than two
// typed clues are exempt.
func brokenAlternation(order []types.Clue) bool {
	typed := 0
	for _, c := range order {
		if c.Typed() {
			typed++
		}
	}
	if typed < 2 {
		return false
	}

	violations := 0
	for i := 0; i < len(order)-1; i++ {
		if order[i].Typed() && order[i+1].Typed() && order[i].Category == order[i+1].Category {
			violations++
		}
	}
	return violations > len(order)/2
}

// materialize zips an accepted ordering into emitted steps, pointing each
// step at the following question, and appends the shared final step.
func materialize(order []types.Clue, finalClue types.Clue) types.GroupSequence {
	seq := make(types.GroupSequence, 0, len(order)+1)
	for i, c := range order {
		next := finalClue.Question
		if i < len(order)-1 {
			next = order[i+1].Question
		}
		seq = append(seq, types.NewClueStep(i+1, c, next))
	}
	seq = append(seq, types.NewClueStep(len(order)+1, finalClue, types.TerminalLabel))
	return seq
}
