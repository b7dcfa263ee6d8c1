package db

import "fmt"

func (db *DB) CountArtists() (int, error) {
	return db.countTable("Artist")
}

func (db *DB) CountGenres() (int, error) {
	return db.countTable("Genre")
}

func (db *DB) CountSongs() (int, error) {
	return db.countTable("Song")
}

func (db *DB) CountSongGenres() (int, error) {
	return db.countTable("SongGenre")
}

func (db *DB) countTable(table string) (int, error) {
	var count int64
	if err := db.
		Table(table).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting rows in %s: %w", table, err)
	}
	return int(count), nil
}
