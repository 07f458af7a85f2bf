package sequencer

import "github.com/mesh-intelligence/hunt/pkg/types"

// Ledger records the first clues and adjacent clue pairs committed by
// earlier groups in a run. It grows monotonically while the run is in
// progress and is discarded with it. Keys are question text; pairs are
// ordered and keyed "a|b".
type Ledger struct {
	firstClues map[string]bool
	pairs      map[string]bool
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		firstClues: make(map[string]bool),
		pairs:      make(map[string]bool),
	}
}

// pairKey builds the ledger key for an ordered adjacent pair.
func pairKey(a, b types.Clue) string {
	return a.Question + "|" + b.Question
}

// Record commits an accepted ordering: its first clue and every adjacent
// ordered pair.
func (l *Ledger) Record(order []types.Clue) {
	if len(order) == 0 {
		return
	}
	l.firstClues[order[0].Question] = true
	for i := 0; i < len(order)-1; i++ {
		l.pairs[pairKey(order[i], order[i+1])] = true
	}
}

// usedFirst reports whether a question has been committed as a first clue.
func (l *Ledger) usedFirst(question string) bool {
	return l.firstClues[question]
}

// usedPair reports whether the ordered pair (a, b) has been committed.
func (l *Ledger) usedPair(a, b types.Clue) bool {
	return l.pairs[pairKey(a, b)]
}
