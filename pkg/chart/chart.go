// Package chart renders the shared-ownership table produced by a
// comparison run. It is purely presentational: all data comes from
// the aggregator's read-only views.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sgc-cli/sgc/pkg/steam"
)

const (
	titleWidth = 25
	nameWidth  = 10

	fileTimestampLayout = "2006-01-02_15-04-05"
)

// Write renders the ownership chart followed by the fun-facts footer.
func Write(w io.Writer, agg *steam.Aggregator, own *steam.Ownership) {
	players := agg.Players()
	catalog := agg.Catalog()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := table.Row{"Game Title"}
	configs := []table.ColumnConfig{{Number: 1, WidthMax: titleWidth}}
	for i, p := range players {
		header = append(header, p.Name)
		configs = append(configs, table.ColumnConfig{
			Number:   i + 2,
			WidthMax: nameWidth,
			Align:    text.AlignCenter,
		})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, id := range own.GameIDs {
		title, _ := catalog.Title(id)
		row := table.Row{title}
		for _, owns := range own.Owners[id] {
			mark := ""
			if owns {
				mark = "X"
			}
			row = append(row, mark)
		}
		t.AppendRow(row)
	}
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fun facts:")
	for _, p := range players {
		fmt.Fprintf(w, "%s owns %d total games.\n", p.Name, p.GameCount())
	}
	fmt.Fprintf(w, "This group of players owns a total of %d unique games!\n", catalog.Len())
}

// WriteFile renders the chart into a timestamped file under dir,
// creating dir if needed, and returns the file's path.
func WriteFile(dir string, agg *steam.Aggregator, own *steam.Ownership) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, time.Now().Format(fileTimestampLayout)+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	Write(f, agg, own)
	return path, nil
}
