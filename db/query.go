package db

import "fmt"

// A GenrePopularity row is one genre's average song popularity.
type GenrePopularity struct {
	Genre         string
	AvgPopularity float64
}

// ArtistGenrePopularity returns the average popularity of one artist's songs
// grouped by genre.
func (db *DB) ArtistGenrePopularity(artistID int64) ([]GenrePopularity, error) {
	var rows []GenrePopularity
	if err := db.
		Table("Song").
		Select("Genre.genre_name as genre", "AVG(Song.popularity) as avg_popularity").
		Joins("JOIN SongGenre ON Song.id = SongGenre.song_id").
		Joins("JOIN Genre ON SongGenre.genre_id = Genre.id").
		Where("Song.artist_id = ?", artistID).
		Group("Genre.genre_name").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error querying popularity per genre for artist %d: %w", artistID, err)
	}
	return rows, nil
}

// OverallGenrePopularity returns the average popularity of all songs grouped
// by genre.
func (db *DB) OverallGenrePopularity() ([]GenrePopularity, error) {
	var rows []GenrePopularity
	if err := db.
		Table("Song").
		Select("Genre.genre_name as genre", "AVG(Song.popularity) as avg_popularity").
		Joins("JOIN SongGenre ON Song.id = SongGenre.song_id").
		Joins("JOIN Genre ON SongGenre.genre_id = Genre.id").
		Group("Genre.genre_name").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error querying overall genre popularity: %w", err)
	}
	return rows, nil
}

// A YearSong row is one (song, genre) pair for a given year. A song with two
// genres appears twice, matching how the aggregates count it once per genre.
type YearSong struct {
	Name         string
	Year         int64
	Danceability float64
	Popularity   int64
	Genre        string
}

// SongsForYear returns all songs and their genres for one year.
func (db *DB) SongsForYear(year int) ([]YearSong, error) {
	var rows []YearSong
	if err := db.
		Table("Song").
		Select(
			"Song.song_name as name",
			"Song.year as year",
			"Song.danceability as danceability",
			"Song.popularity as popularity",
			"Genre.genre_name as genre",
		).
		Joins("JOIN SongGenre ON Song.id = SongGenre.song_id").
		Joins("JOIN Genre ON SongGenre.genre_id = Genre.id").
		Where("Song.year = ?", year).
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error querying songs for year %d: %w", year, err)
	}
	return rows, nil
}

// An ArtistYearStat row is one artist's song count and average popularity
// for one year.
type ArtistYearStat struct {
	Artist        string
	Year          int
	TotalSongs    int
	AvgPopularity float64
}

// ArtistYearStats returns per-artist, per-year song counts and average
// popularity within [startYear, endYear], ordered by year then song count.
func (db *DB) ArtistYearStats(startYear, endYear int) ([]ArtistYearStat, error) {
	var rows []ArtistYearStat
	if err := db.
		Table("Song").
		Select(
			"Artist.artist_name as artist",
			"Song.year as year",
			"COUNT(Song.id) as total_songs",
			"AVG(Song.popularity) as avg_popularity",
		).
		Joins("JOIN Artist ON Song.artist_id = Artist.id").
		Where("Song.year BETWEEN ? AND ?", startYear, endYear).
		Group("Artist.artist_name, Song.year").
		Order("Song.year, total_songs DESC").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error querying artist stats for %d-%d: %w", startYear, endYear, err)
	}
	return rows, nil
}
