package sequencer

import (
	"math/rand"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// alternatingOrder builds a candidate ordering that starts with a place
// clue and alternates person/place as far as the buckets allow. Returns
// nil when the pool cannot support the pattern (no place clues, or fewer
// than two typed clues); the caller falls back to a plain shuffle.
func alternatingOrder(clues []types.Clue, rng *rand.Rand) []types.Clue {
	var person, place, other []types.Clue
	for _, c := range clues {
		switch c.Category {
		case types.CategoryPerson:
			person = append(person, c)
		case types.CategoryPlace:
			place = append(place, c)
		default:
			other = append(other, c)
		}
	}

	// The first slot must be a place clue.
	if len(place) == 0 {
		return nil
	}
	if len(person)+len(place) < 2 {
		return nil
	}

	shuffle(person, rng)
	shuffle(place, rng)
	shuffle(other, rng)

	// Greedy alternation: take from the bucket matching the expected type,
	// falling back to whichever typed bucket still has clues. The fallback
	// can break strict alternation near the end, which is acceptable.
	result := make([]types.Clue, 0, len(clues))
	personIdx, placeIdx := 0, 0
	want := types.CategoryPlace
	for i := 0; i < len(person)+len(place); i++ {
		switch {
		case want == types.CategoryPlace && placeIdx < len(place):
			result = append(result, place[placeIdx])
			placeIdx++
			want = types.CategoryPerson
		case want == types.CategoryPerson && personIdx < len(person):
			result = append(result, person[personIdx])
			personIdx++
			want = types.CategoryPlace
		case placeIdx < len(place):
			result = append(result, place[placeIdx])
			placeIdx++
			want = types.CategoryPerson
		default:
			result = append(result, person[personIdx])
			personIdx++
			want = types.CategoryPlace
		}
	}

	// Single best-effort repair: prefer a place clue in the second-to-last
	// slot. One scan over the earlier positions, at most one swap.
	if len(result) >= 2 {
		secondToLast := len(result) - 2
		if result[secondToLast].Category == types.CategoryPerson {
			for i := 0; i < secondToLast; i++ {
				if result[i].Category == types.CategoryPlace {
					result[i], result[secondToLast] = result[secondToLast], result[i]
					break
				}
			}
		}
	}

	// Untyped clues land at uniformly random positions past the fixed
	// place-first slot, each insertion drawn independently.
	for _, c := range other {
		pos := 1 + rng.Intn(len(result))
		result = append(result, types.Clue{})
		copy(result[pos+1:], result[pos:])
		result[pos] = c
	}

	return result
}

// shuffle permutes clues in place using rng.
func shuffle(clues []types.Clue, rng *rand.Rand) {
	rng.Shuffle(len(clues), func(i, j int) {
		clues[i], clues[j] = clues[j], clues[i]
	})
}
