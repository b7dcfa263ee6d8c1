package main

import (
	"context"
	"fmt"
	"os"

	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/report"
	"github.com/christianw/songdb/setflag"
	"github.com/christianw/songdb/subcmd"
)

func genres(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("genres", "per-genre song statistics for one year")
	year := subcmd.Int("year", 0, fmt.Sprintf("year to report on (%d-%d); prompted for when omitted", minYear, maxYear))
	out := setflag.New("table", "chart")
	subcmd.Var(out, "out", "outputs to produce: 'table', 'chart' (default table)")
	chartPath := subcmd.String("chart-file", "genres.html", "path for the chart html")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *year == 0 {
		var err error
		if *year, err = promptYear(fmt.Sprintf("Please enter a year between %d and %d: ", minYear, maxYear)); err != nil {
			return err
		}
	} else if *year < minYear || *year > maxYear {
		return fmt.Errorf("year %d out of range: must be between %d and %d", *year, minYear, maxYear)
	}

	rows, err := db.SongsForYear(*year)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Printf("No data available for the year %d.\n", *year)
		return nil
	}

	stats := report.GenreStats(rows)

	if out.Empty() || out.Has("table") {
		report.RenderGenreStats(os.Stdout, *year, stats)
	}
	if out.Has("chart") {
		if err := report.GenreStatsChart(*chartPath, *year, stats); err != nil {
			return err
		}
		fmt.Printf("wrote chart to %s\n", *chartPath)
	}

	return nil
}
