package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/randutil"
)

func assertFullDeck(t *testing.T, d *Deck) {
	t.Helper()
	cards := d.Cards()
	require.Len(t, cards, Size)
	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range Suits {
		for _, r := range Ranks {
			assert.True(t, seen[NewCard(s, r)], "missing card %s", NewCard(s, r))
		}
	}
}

func TestNewDeckHas52UniqueCards(t *testing.T) {
	assertFullDeck(t, New(randutil.New(1)))
}

func TestResetRestoresUniqueDeck(t *testing.T) {
	d := New(randutil.New(7))
	for seed := range 20 {
		_, err := d.DrawN(seed + 5)
		require.NoError(t, err)
		d.Reset()
		assert.Equal(t, 0, d.Dealt())
		assertFullDeck(t, d)
	}
}

func TestDrawWithoutReplacement(t *testing.T) {
	d := New(randutil.New(3))
	seen := make(map[Card]bool)
	for i := range Size {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c], "card %s drawn twice", c)
		seen[c] = true
		assert.Equal(t, Size, d.Remaining()+d.Dealt())
		assert.Equal(t, i+1, d.Dealt())
	}

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.ErrorIs(t, d.Burn(), ErrEmptyDeck)
}

func TestDrawNStopsAtEmpty(t *testing.T) {
	d := New(randutil.New(3))
	_, err := d.DrawN(50)
	require.NoError(t, err)

	cards, err := d.DrawN(5)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Len(t, cards, 2)
	assert.Equal(t, 0, d.Remaining())
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := New(randutil.New(42))
	b := New(randutil.New(42))
	c := New(randutil.New(43))
	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestStackedDeck(t *testing.T) {
	top := MustParseCards("AsAdKhKd")
	d, err := NewStacked(top...)
	require.NoError(t, err)
	assertFullDeck(t, d)

	got, err := d.DrawN(4)
	require.NoError(t, err)
	assert.Equal(t, top, got)

	d.Reset()
	first, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, top[0], first)
}

func TestStackedDeckRejectsDuplicates(t *testing.T) {
	_, err := NewStacked(MustParseCards("AsAs")...)
	assert.Error(t, err)
}

func TestNewPanicsWithoutRNG(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
