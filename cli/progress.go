package main

import (
	"context"
	"fmt"

	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/subcmd"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func progress(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("progress", "report row counts from the database")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	artists, err := db.CountArtists()
	if err != nil {
		return err
	}
	genres, err := db.CountGenres()
	if err != nil {
		return err
	}
	songs, err := db.CountSongs()
	if err != nil {
		return err
	}
	songGenres, err := db.CountSongGenres()
	if err != nil {
		return err
	}

	humanPrinter.Printf("  %d\tartists\n", artists)
	humanPrinter.Printf("  %d\tgenres\n", genres)
	humanPrinter.Printf("  %d\tsongs\n", songs)
	humanPrinter.Printf("  %d\tsong genres\n", songGenres)

	return nil
}

var humanPrinter = message.NewPrinter(language.English)
