package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Charts render to self-contained HTML files, one chart per file.

// ComparisonChart writes a grouped bar chart of the artist's average
// popularity per genre next to the overall genre average.
func ComparisonChart(path, artist string, rows []Comparison) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Artist vs Overall Genre Popularity for %s", artist),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Genre", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Average Popularity"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	genres := make([]string, len(rows))
	artistData := make([]opts.BarData, len(rows))
	genreData := make([]opts.BarData, len(rows))
	for i, row := range rows {
		genres[i] = row.Genre
		if row.HasArtist {
			artistData[i] = opts.BarData{Value: round2(row.ArtistAvg)}
		} else {
			artistData[i] = opts.BarData{Value: nil}
		}
		genreData[i] = opts.BarData{Value: round2(row.GenreAvg)}
	}

	bar.SetXAxis(genres).
		AddSeries("Artist's Popularity", artistData).
		AddSeries("Overall Genre Popularity", genreData)

	return render(bar, path)
}

// GenreStatsChart writes a pie chart of the year's song counts per genre.
func GenreStatsChart(path string, year int, stats []GenreStat) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Distribution of Songs by Genre in %d", year),
		}),
	)

	items := make([]opts.PieData, len(stats))
	for i, stat := range stats {
		items[i] = opts.PieData{Name: stat.Genre, Value: stat.TotalSongs}
	}

	pie.AddSeries("songs", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}))

	return render(pie, path)
}

// RankingChart writes a line chart of each ranked artist's yearly rank
// value, interpolated across gaps, plus a dashed yearly-average series.
func RankingChart(path string, r Ranking) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d Artists Ranking (%d-%d)",
				len(r.Rows), r.Years[0], r.Years[len(r.Years)-1]),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Rank Value"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	years := make([]string, len(r.Years))
	for i, year := range r.Years {
		years[i] = fmt.Sprintf("%d", year)
	}
	line.SetXAxis(years)

	for _, row := range r.Rows {
		line.AddSeries(row.Artist, lineData(Interpolate(row.Values)))
	}
	line.AddSeries("Yearly Average", lineData(Interpolate(r.YearlyAverages())),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Color: "black"}))

	return render(line, path)
}

type renderer interface {
	Render(w io.Writer) error
}

func render(chart renderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating chart file '%s': %w", path, err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("error rendering chart to '%s': %w", path, err)
	}
	return nil
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			items[i] = opts.LineData{Value: nil}
		} else {
			items[i] = opts.LineData{Value: round2(v)}
		}
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
