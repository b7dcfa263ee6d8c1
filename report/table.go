package report

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var highlight = color.New(color.FgYellow, color.Bold)

// RenderComparison prints the artist vs genre popularity table. Rows where
// the artist beats the genre's overall average are highlighted.
func RenderComparison(w io.Writer, artist string, rows []Comparison) {
	fmt.Fprintf(w, "Popularity comparison for artist: %s\n", artist)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"genre", "artist avg popularity", "genre avg popularity"})
	table.SetAutoFormatHeaders(false)
	for _, row := range rows {
		artistAvg := ""
		if row.HasArtist {
			artistAvg = fmt.Sprintf("%.2f", row.ArtistAvg)
		}
		cells := []string{row.Genre, artistAvg, fmt.Sprintf("%.2f", row.GenreAvg)}
		if row.Beats() {
			for i, cell := range cells {
				cells[i] = highlight.Sprint(cell)
			}
		}
		table.Append(cells)
	}
	table.Render()
}

// RenderGenreStats prints the per-genre statistics table for one year.
func RenderGenreStats(w io.Writer, year int, stats []GenreStat) {
	fmt.Fprintf(w, "Statistics for songs in %d:\n", year)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"genre", "total songs", "avg danceability", "avg popularity"})
	table.SetAutoFormatHeaders(false)
	for _, stat := range stats {
		table.Append([]string{
			stat.Genre,
			fmt.Sprintf("%d", stat.TotalSongs),
			fmt.Sprintf("%.3f", stat.AvgDanceability),
			fmt.Sprintf("%.2f", stat.AvgPopularity),
		})
	}
	table.Render()
}

// RenderRanking prints the pivoted artist ranking, one column per year plus
// a trailing Average. The best value in each year column is highlighted.
func RenderRanking(w io.Writer, r Ranking) {
	header := []string{"artist"}
	for _, year := range r.Years {
		header = append(header, fmt.Sprintf("%d", year))
	}
	header = append(header, "Average")

	best := make([]float64, len(r.Years))
	for i := range r.Years {
		best[i] = math.NaN()
		for _, row := range r.Rows {
			if v := row.Values[i]; !math.IsNaN(v) && (math.IsNaN(best[i]) || v > best[i]) {
				best[i] = v
			}
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for _, row := range r.Rows {
		cells := []string{row.Artist}
		for i, v := range row.Values {
			cell := ""
			if !math.IsNaN(v) {
				cell = fmt.Sprintf("%.2f", v)
				if v == best[i] {
					cell = highlight.Sprint(cell)
				}
			}
			cells = append(cells, cell)
		}
		cells = append(cells, fmt.Sprintf("%.2f", row.Average))
		table.Append(cells)
	}
	table.Render()
}
