package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

func TestCombinations(t *testing.T) {
	assert.Len(t, Combinations(7, 5), 21)
	assert.Len(t, Combinations(6, 5), 6)
	assert.Len(t, Combinations(5, 5), 1)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, Combinations(3, 2))
	assert.Nil(t, Combinations(3, 4))

	seen := make(map[[5]int]bool)
	for _, c := range Combinations(7, 5) {
		key := [5]int(c)
		assert.False(t, seen[key], "duplicate combination %v", c)
		seen[key] = true
		for i := 1; i < len(c); i++ {
			assert.Less(t, c[i-1], c[i])
		}
	}
}

func TestBestRequiresFiveCards(t *testing.T) {
	for _, n := range []int{0, 2, 3, 4} {
		cards, err := deck.New(randutil.New(1)).DrawN(n)
		require.NoError(t, err)
		_, err = Best(cards)
		assert.ErrorIs(t, err, ErrInsufficientCards, "n=%d", n)
	}

	eight, err := deck.New(randutil.New(1)).DrawN(8)
	require.NoError(t, err)
	_, err = Best(eight)
	assert.ErrorIs(t, err, ErrWrongCardCount)

	_, err = Best(deck.MustParseCards("As As Kd Qc Jh 9d"))
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestBestFindsHiddenHands(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		tiebreak []int
	}{
		{"flush over straight", "Ah Kh 9h 4h 2h Qd Jc", Flush, []int{14, 13, 9, 4, 2}},
		{"two trips make a full house", "9s 9d 9c 4h 4d 4c Ks", FullHouse, []int{9, 4}},
		{"three pairs keep best two", "Qs Qd 8c 8h 3d 3c 2s", TwoPair, []int{12, 8, 3}},
		{"six card straight uses top", "4s 5d 6c 7h 8d 9c Kh", Straight, []int{9}},
		{"royal in seven", "Ts Js Qs Ks As 9s 2d", RoyalFlush, []int{14}},
		{"quads with best kicker", "7s 7d 7c 7h 2d Ac Kd", FourOfAKind, []int{7, 14}},
		{"wheel with extra low cards", "Ah 2d 3c 4s 5h 5d Kc", Straight, []int{5}},
		{"five cards", "2s 7d 9c Jh Kd", HighCard, []int{13, 11, 9, 7, 2}},
		{"six cards", "2s 7d 9c Jh Kd Ks", Pair, []int{13, 11, 9, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Best(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, h.Category, h.String())
			assert.Equal(t, tt.tiebreak, h.Tiebreak)
		})
	}
}

func TestBestDominatesEverySubset(t *testing.T) {
	rng := randutil.New(2024)
	for range 300 {
		cards, err := deck.New(rng).DrawN(7)
		require.NoError(t, err)
		best, err := Best(cards)
		require.NoError(t, err)

		matched := false
		for _, idx := range Combinations(7, 5) {
			sub := MustEvaluate([]deck.Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]})
			assert.GreaterOrEqual(t, Compare(best, sub), 0)
			if Compare(best, sub) == 0 {
				matched = true
			}
		}
		assert.True(t, matched, "best hand must be one of the subsets")

		// The reported cards really make the reported hand
		again := MustEvaluate(best.Cards[:])
		assert.True(t, again.Equal(best))
	}
}

func TestBestOfWheelBoard(t *testing.T) {
	board := deck.MustParseCards("Ac 2h 3d 4s 5c")
	a, err := BestOf(deck.MustParseCards("As Ad"), board)
	require.NoError(t, err)
	b, err := BestOf(deck.MustParseCards("Kh Kd"), board)
	require.NoError(t, err)

	assert.Equal(t, Straight, a.Category)
	assert.Equal(t, []int{5}, a.Tiebreak)
	assert.Equal(t, Straight, b.Category)
	assert.Equal(t, []int{5}, b.Tiebreak)
	assert.True(t, a.Equal(b))
}
