package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgc-cli/sgc/pkg/steam"
	"github.com/stretchr/testify/require"
)

func testRun(t *testing.T) (*steam.Aggregator, *steam.Ownership) {
	t.Helper()

	agg := steam.NewAggregator()
	agg.AddPlayer(steam.NewPlayerProfile("Alice", []steam.Game{
		{ID: 10, Title: "Counter-Strike"},
		{ID: 400, Title: "Portal"},
		{ID: 620, Title: "Portal 2"},
	}))
	agg.AddPlayer(steam.NewPlayerProfile("Bob", []steam.Game{
		{ID: 400, Title: "Portal"},
		{ID: 620, Title: "Portal 2"},
		{ID: 570, Title: "Dota 2"},
	}))

	own, err := agg.CommonGames()
	require.NoError(t, err)
	return agg, own
}

func TestWrite(t *testing.T) {
	agg, own := testRun(t)

	var buf bytes.Buffer
	Write(&buf, agg, own)
	out := buf.String()

	require.Contains(t, out, "Game Title")
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "Bob")
	require.Contains(t, out, "Portal")
	require.Contains(t, out, "Portal 2")
	require.Contains(t, out, "X")
	require.NotContains(t, out, "Counter-Strike", "games owned by one player stay out of the chart")
	require.NotContains(t, out, "Dota 2")

	require.Contains(t, out, "Fun facts:")
	require.Contains(t, out, "Alice owns 3 total games.")
	require.Contains(t, out, "Bob owns 3 total games.")
	require.Contains(t, out, "This group of players owns a total of 4 unique games!")
}

func TestWrite_RowOrderFollowsCatalog(t *testing.T) {
	agg, own := testRun(t)

	var buf bytes.Buffer
	Write(&buf, agg, own)
	out := buf.String()

	require.Less(t, strings.Index(out, "Portal"), strings.Index(out, "Portal 2"))
}

func TestWriteFile(t *testing.T) {
	agg, own := testRun(t)
	dir := filepath.Join(t.TempDir(), "charts")

	path, err := WriteFile(dir, agg, own)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Fun facts:")
}
