package steam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonGames_Intersection(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", []Game{
		{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}, {ID: 3, Title: "Three"},
	}))
	agg.AddPlayer(NewPlayerProfile("B", []Game{
		{ID: 2, Title: "Two"}, {ID: 3, Title: "Three"}, {ID: 4, Title: "Four"},
	}))

	own, err := agg.CommonGames()
	require.NoError(t, err)

	require.Equal(t, []GameID{2, 3}, own.GameIDs)
	require.Equal(t, []bool{true, true}, own.Owners[2])
	require.Equal(t, []bool{true, true}, own.Owners[3])
	require.NotContains(t, own.Owners, GameID(1))
	require.NotContains(t, own.Owners, GameID(4))
}

func TestCommonGames_NoOverlap(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", []Game{{ID: 1, Title: "One"}}))
	agg.AddPlayer(NewPlayerProfile("B", []Game{{ID: 2, Title: "Two"}}))

	own, err := agg.CommonGames()
	require.ErrorIs(t, err, ErrNoOverlap)
	require.Nil(t, own)
}

func TestCommonGames_EntryPerPlayer(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", []Game{{ID: 7, Title: "Seven"}}))
	agg.AddPlayer(NewPlayerProfile("B", []Game{{ID: 7, Title: "Seven"}}))
	agg.AddPlayer(NewPlayerProfile("C", []Game{{ID: 8, Title: "Eight"}}))

	own, err := agg.CommonGames()
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, own.Owners[7])
}

func TestCatalog_FirstWriteWins(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", []Game{{ID: 10, Title: "Counter-Strike"}}))
	agg.AddPlayer(NewPlayerProfile("B", []Game{{ID: 10, Title: "CS 1.6 (renamed)"}}))

	title, ok := agg.Catalog().Title(10)
	require.True(t, ok)
	require.Equal(t, "Counter-Strike", title)
}

func TestCatalog_InsertionOrderIsStable(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", []Game{
		{ID: 30, Title: "Thirty"}, {ID: 10, Title: "Ten"},
	}))
	agg.AddPlayer(NewPlayerProfile("B", []Game{
		{ID: 10, Title: "Ten"}, {ID: 20, Title: "Twenty"}, {ID: 30, Title: "Thirty"},
	}))

	require.Equal(t, []GameID{30, 10, 20}, agg.Catalog().GameIDs())

	// The index follows catalog insertion order, not numeric order.
	own, err := agg.CommonGames()
	require.NoError(t, err)
	require.Equal(t, []GameID{30, 10}, own.GameIDs)
}

func TestAggregator_PlayersIsACopy(t *testing.T) {
	agg := NewAggregator()
	agg.AddPlayer(NewPlayerProfile("A", nil))

	players := agg.Players()
	players[0] = nil
	require.NotNil(t, agg.Players()[0])
}
