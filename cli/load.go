package main

import (
	"context"
	"fmt"

	"github.com/christianw/songdb/dataset"
	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/loader"
	"github.com/christianw/songdb/subcmd"
	"github.com/rs/zerolog"
)

func load(ctx context.Context, db *db.DB, log zerolog.Logger, args []string) error {
	subcmd := subcmd.New("load", "filter and normalize a song csv into the database\n"+
		"re-running against a populated database duplicates songs, not artists or genres")
	subcmd.SetArg("csv", "path", "path to the song dataset (default songs.csv)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	path := "songs.csv"
	if subcmd.NArg() > 0 {
		path = subcmd.Arg(0)
	}

	rows, total, err := dataset.ReadFile(path)
	if err != nil {
		return err
	}
	log.Info().
		Int("total", total).
		Int("kept", len(rows)).
		Msg("filtered dataset")

	stats, err := loader.New(db, log).Run(ctx, rows)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	log.Info().
		Int("songs", stats.Songs).
		Int("artists", stats.Artists).
		Int("genres", stats.Genres).
		Int("song_genres", stats.Links).
		Msg("load complete")

	return nil
}
