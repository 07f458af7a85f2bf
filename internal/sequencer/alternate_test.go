package sequencer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

func placeClue(q string) types.Clue {
	return types.Clue{Question: q, Answer: "a", Category: types.CategoryPlace}
}

func personClue(q string) types.Clue {
	return types.Clue{Question: q, Answer: "a", Category: types.CategoryPerson}
}

func otherClue(q string) types.Clue {
	return types.Clue{Question: q, Answer: "a", Category: types.CategoryOther}
}

func TestAlternatingOrderNoPlaces(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	clues := []types.Clue{personClue("a"), personClue("b"), otherClue("c")}

	assert.Nil(t, alternatingOrder(clues, rng))
}

func TestAlternatingOrderTooFewTyped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	clues := []types.Clue{placeClue("a"), otherClue("b"), otherClue("c")}

	assert.Nil(t, alternatingOrder(clues, rng))
}

func TestAlternatingOrderBalanced(t *testing.T) {
	clues := []types.Clue{
		placeClue("p1"), placeClue("p2"), placeClue("p3"),
		personClue("h1"), personClue("h2"), personClue("h3"),
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		result := alternatingOrder(clues, rng)
		require.Len(t, result, len(clues), "seed %d", seed)

		// Equal buckets alternate strictly, place first.
		for i, c := range result {
			want := types.CategoryPlace
			if i%2 == 1 {
				want = types.CategoryPerson
			}
			assert.Equal(t, want, c.Category, "seed %d position %d", seed, i)
		}
	}
}

func TestAlternatingOrderSecondToLastRepair(t *testing.T) {
	// One place and three persons greedily build [place person person
	// person]; the repair swap moves the place clue into the second-to-last
	// slot.
	clues := []types.Clue{
		placeClue("p1"),
		personClue("h1"), personClue("h2"), personClue("h3"),
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		result := alternatingOrder(clues, rng)
		require.Len(t, result, len(clues), "seed %d", seed)

		assert.Equal(t, types.CategoryPlace, result[len(result)-2].Category,
			"seed %d second-to-last slot", seed)
	}
}

func TestAlternatingOrderOthersNeverFirst(t *testing.T) {
	clues := []types.Clue{
		placeClue("p1"), placeClue("p2"),
		personClue("h1"), personClue("h2"),
		otherClue("o1"), otherClue("o2"),
	}

	want := make(map[string]int, len(clues))
	for _, c := range clues {
		want[c.Question]++
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		result := alternatingOrder(clues, rng)
		require.Len(t, result, len(clues), "seed %d", seed)

		assert.Equal(t, types.CategoryPlace, result[0].Category,
			"seed %d first slot", seed)

		got := make(map[string]int, len(result))
		for _, c := range result {
			got[c.Question]++
		}
		assert.Equal(t, want, got, "seed %d lost or duplicated clues", seed)
	}
}
