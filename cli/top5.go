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

func top5(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("top5", "rank artists over a year range by a weighted mix of\nsong count and average popularity")
	start := subcmd.Int("start", 0, fmt.Sprintf("start year (%d-%d); prompted for when omitted", minYear, maxYear))
	end := subcmd.Int("end", 0, fmt.Sprintf("end year (%d-%d); prompted for when omitted", minYear, maxYear))
	count := subcmd.Int("count", 5, "number of artists to rank")
	weightSongs := subcmd.Float64("weight-songs", report.DefaultWeights.Songs, "weight for total songs per year")
	weightPopularity := subcmd.Float64("weight-popularity", report.DefaultWeights.Popularity, "weight for average popularity per year")
	out := setflag.New("table", "chart")
	subcmd.Var(out, "out", "outputs to produce: 'table', 'chart' (default table)")
	chartPath := subcmd.String("chart-file", "top5.html", "path for the chart html")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *start == 0 || *end == 0 {
		var err error
		if *start, *end, err = promptYearRange(); err != nil {
			return err
		}
	} else if *start < minYear || *end > maxYear || *start > *end {
		return fmt.Errorf("invalid range %d-%d: years must be between %d and %d with start <= end",
			*start, *end, minYear, maxYear)
	}

	stats, err := db.ArtistYearStats(*start, *end)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No data available for the specified year range.")
		return nil
	}

	weights := report.Weights{Songs: *weightSongs, Popularity: *weightPopularity}
	ranking := report.BuildRanking(stats, *start, *end, weights).Top(*count)

	if out.Empty() || out.Has("table") {
		report.RenderRanking(os.Stdout, ranking)
	}
	if out.Has("chart") {
		if err := report.RankingChart(*chartPath, ranking); err != nil {
			return err
		}
		fmt.Printf("wrote chart to %s\n", *chartPath)
	}

	return nil
}
