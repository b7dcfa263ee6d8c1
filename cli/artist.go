package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/christianw/songdb/dataset"
	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/report"
	"github.com/christianw/songdb/setflag"
	"github.com/christianw/songdb/subcmd"
)

func artist(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("artist", "compare an artist's average popularity per genre\nagainst the overall genre popularity")
	subcmd.SetArg("name", "string", "artist name; prompted for when omitted")
	out := setflag.New("table", "chart")
	subcmd.Var(out, "out", "outputs to produce: 'table', 'chart' (default table)")
	chartPath := subcmd.String("chart-file", "artist.html", "path for the chart html")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	name := strings.Join(subcmd.Args(), " ")
	if name == "" {
		var err error
		if name, err = promptLine("Please enter the artist's name: "); err != nil {
			return err
		}
	}
	name = dataset.CanonicalArtist(name)

	artistID, found, err := db.GetArtistID(name)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("Artist '%s' not found in the database.\n", name)
		return nil
	}

	artistRows, err := db.ArtistGenrePopularity(artistID)
	if err != nil {
		return err
	}
	overallRows, err := db.OverallGenrePopularity()
	if err != nil {
		return err
	}
	merged := report.MergePopularity(artistRows, overallRows)

	if out.Empty() || out.Has("table") {
		report.RenderComparison(os.Stdout, name, merged)
	}
	if out.Has("chart") {
		if err := report.ComparisonChart(*chartPath, name, merged); err != nil {
			return err
		}
		fmt.Printf("wrote chart to %s\n", *chartPath)
	}

	return nil
}
