package db

import (
	"errors"
	"fmt"

	"github.com/christianw/songdb/data"
	"gorm.io/gorm"
)

// ResolveArtist looks up an artist by its canonical name and returns its id,
// inserting the artist first if it doesn't exist yet. Calling it twice with
// the same name returns the same id both times and leaves exactly one row.
//
// The name is taken as-is: canonicalization (lower-case,
// underscore-for-space) happens in the dataset package before resolution,
// and an empty or whitespace-only name is an ordinary distinct key.
func (db *DB) ResolveArtist(name string) (int64, error) {
	var artist data.Artist
	err := db.Where("artist_name = ?", name).First(&artist).Error
	if err == nil {
		return artist.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("error looking up artist '%s': %w", name, err)
	}

	artist = data.Artist{Name: name}
	if err := db.Create(&artist).Error; err != nil {
		return 0, fmt.Errorf("error inserting artist '%s': %w", name, err)
	}
	return artist.ID, nil
}

// ResolveGenre is the genre counterpart of ResolveArtist.
func (db *DB) ResolveGenre(name string) (int64, error) {
	var genre data.Genre
	err := db.Where("genre_name = ?", name).First(&genre).Error
	if err == nil {
		return genre.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("error looking up genre '%s': %w", name, err)
	}

	genre = data.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		return 0, fmt.Errorf("error inserting genre '%s': %w", name, err)
	}
	return genre.ID, nil
}

// GetArtistID returns the id for an already-canonicalized artist name.
// A missing artist is not an error: callers report it to the user and move
// on, so absence comes back as found == false.
func (db *DB) GetArtistID(name string) (id int64, found bool, err error) {
	var artist data.Artist
	if err := db.Where("artist_name = ?", name).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error looking up artist '%s': %w", name, err)
	}
	return artist.ID, true, nil
}
