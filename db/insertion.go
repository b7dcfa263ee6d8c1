package db

import (
	"fmt"

	"github.com/christianw/songdb/data"
	"gorm.io/gorm/clause"
)

// InsertSong inserts a song bound to an already-resolved artist id and
// returns the new song's id. Songs are not deduplicated: loading the same
// input twice produces two rows.
func (db *DB) InsertSong(song *data.Song) (int64, error) {
	if err := db.Create(song).Error; err != nil {
		return 0, fmt.Errorf("error inserting song '%s': %w", song.Name, err)
	}
	return song.ID, nil
}

// InsertSongGenre links a song to a genre, doing nothing if the pair already
// exists. The input guarantees a song's genre list has no repeats, but a
// repeated token must not violate the composite primary key.
func (db *DB) InsertSongGenre(songID, genreID int64) error {
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&data.SongGenre{SongID: songID, GenreID: genreID}).
		Error; err != nil {
		return fmt.Errorf("error inserting song genre {%d %d}: %w", songID, genreID, err)
	}
	return nil
}
