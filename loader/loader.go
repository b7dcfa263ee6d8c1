// Package loader populates the database from a prepared dataset. The rows it
// receives are already filtered and canonicalized; its job is resolving
// artists and genres, inserting songs, and linking songs to genres, with all
// writes committed as one batch at the end of the run.
package loader

import (
	"context"
	"fmt"

	"github.com/christianw/songdb/data"
	"github.com/christianw/songdb/dataset"
	"github.com/christianw/songdb/db"
	"github.com/rs/zerolog"
)

// logEvery is how many rows pass between progress log lines.
const logEvery = 500

type Loader struct {
	db  *db.DB
	log zerolog.Logger

	// Per-run id caches keyed by natural key, checked before the
	// database lookup-or-insert so duplicate keys cost one round trip
	// per run instead of one per row.
	artists map[string]int64
	genres  map[string]int64
}

func New(db *db.DB, log zerolog.Logger) *Loader {
	return &Loader{
		db:      db,
		log:     log,
		artists: make(map[string]int64),
		genres:  make(map[string]int64),
	}
}

// Stats reports what one load run wrote. Artists and Genres count distinct
// keys referenced, which equals rows created only on a fresh database.
type Stats struct {
	Songs   int
	Links   int
	Artists int
	Genres  int
}

// Run loads every row, committing the whole batch in one transaction at the
// end. An error (or cancellation) mid-run rolls everything back.
//
// Re-running against a populated database duplicates Song and SongGenre rows
// (songs get fresh ids); Artist and Genre rows dedup by name.
func (l *Loader) Run(ctx context.Context, rows []dataset.Row) (Stats, error) {
	var stats Stats

	err := l.db.Tx(func(tx *db.DB) error {
		for i, row := range rows {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("canceled: %w", err)
			}

			if err := l.loadRow(tx, row, &stats); err != nil {
				return fmt.Errorf("error loading row %d ('%s'): %w", i+1, row.Song, err)
			}

			if (i+1)%logEvery == 0 {
				l.log.Info().
					Int("songs", i+1).
					Int("of", len(rows)).
					Msg("loading")
			}
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	stats.Artists = len(l.artists)
	stats.Genres = len(l.genres)
	return stats, nil
}

func (l *Loader) loadRow(tx *db.DB, row dataset.Row, stats *Stats) error {
	artistID, err := l.resolveArtist(tx, row.Artist)
	if err != nil {
		return err
	}

	songID, err := tx.InsertSong(&data.Song{
		Name:         row.Song,
		Duration:     row.Seconds(),
		Explicit:     row.ExplicitInt(),
		Year:         row.Year,
		Popularity:   row.Popularity,
		Danceability: row.Danceability,
		Speechiness:  row.Speechiness,
		ArtistID:     artistID,
	})
	if err != nil {
		return err
	}
	stats.Songs++

	for _, genre := range row.Genres() {
		genreID, err := l.resolveGenre(tx, genre)
		if err != nil {
			return err
		}
		if err := tx.InsertSongGenre(songID, genreID); err != nil {
			return err
		}
		stats.Links++
	}

	return nil
}

func (l *Loader) resolveArtist(tx *db.DB, name string) (int64, error) {
	if id, ok := l.artists[name]; ok {
		return id, nil
	}
	id, err := tx.ResolveArtist(name)
	if err != nil {
		return 0, err
	}
	l.artists[name] = id
	return id, nil
}

func (l *Loader) resolveGenre(tx *db.DB, name string) (int64, error) {
	if id, ok := l.genres[name]; ok {
		return id, nil
	}
	id, err := tx.ResolveGenre(name)
	if err != nil {
		return 0, err
	}
	l.genres[name] = id
	return id, nil
}
