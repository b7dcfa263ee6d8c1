// Package dataset reads the raw song CSV and prepares it for loading:
// filtering, artist-name canonicalization, and duration conversion all
// happen here, before any row reaches the loader.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

// A Row is one record of the input CSV. The file may carry extra columns;
// only the tagged ones are decoded.
type Row struct {
	Song         string  `csv:"song"`
	Artist       string  `csv:"artist"`
	Genre        string  `csv:"genre"`
	DurationMS   int64   `csv:"duration_ms"`
	Popularity   int64   `csv:"popularity"`
	Speechiness  float64 `csv:"speechiness"`
	Danceability float64 `csv:"danceability"`
	Explicit     bool    `csv:"explicit"`
	Year         int64   `csv:"year"`
}

// Keep reports whether the row survives filtering: popularity strictly
// greater than 50, speechiness within [0.33, 0.66] inclusive, and
// danceability strictly greater than 0.20.
func (r Row) Keep() bool {
	return r.Popularity > 50 &&
		r.Speechiness >= 0.33 && r.Speechiness <= 0.66 &&
		r.Danceability > 0.20
}

// Seconds converts the row's duration from milliseconds to seconds, rounded
// to the nearest integer.
func (r Row) Seconds() int64 {
	return int64(math.Round(float64(r.DurationMS) / 1000))
}

// ExplicitInt is the explicit flag as stored: 1 or 0.
func (r Row) ExplicitInt() int64 {
	if r.Explicit {
		return 1
	}
	return 0
}

// Genres splits the row's genre field on the dataset's ", " delimiter,
// dropping empty tokens so a song with an empty genre list links to nothing
// rather than to an empty-named genre.
func (r Row) Genres() []string {
	var genres []string
	for _, genre := range strings.Split(r.Genre, ", ") {
		if genre == "" {
			continue
		}
		genres = append(genres, genre)
	}
	return genres
}

// CanonicalArtist lower-cases an artist name and replaces spaces with
// underscores. This is the dedup identity for artists, applied once here;
// the database resolvers take the key as-is.
func CanonicalArtist(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Read decodes all rows from a CSV stream.
func Read(r io.Reader) ([]Row, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}

	var rows []Row
	for {
		var row Row
		if err := dec.Decode(&row); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("error decoding csv row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads and prepares the dataset at path, returning the filtered
// rows with canonicalized artist names, plus the total row count before
// filtering.
func ReadFile(path string) (kept []Row, total int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error opening dataset '%s': %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading dataset '%s': %w", path, err)
	}

	return Prepare(rows), len(rows), nil
}

// Prepare applies the filter predicate and canonicalizes artist names.
func Prepare(rows []Row) []Row {
	var kept []Row
	for _, row := range rows {
		if !row.Keep() {
			continue
		}
		row.Artist = CanonicalArtist(row.Artist)
		kept = append(kept, row)
	}
	return kept
}
