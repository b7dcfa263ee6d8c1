// Package report turns query rows into the three reports: the artist vs
// genre popularity comparison, yearly genre statistics, and the weighted
// top-5 artist ranking. The transforms are pure so they can be tested
// without a database; rendering lives in table.go and chart.go.
package report

import (
	"sort"

	"github.com/christianw/songdb/db"
)

// A Comparison row holds one genre's average popularity for the artist and
// overall. HasArtist is false for genres the artist has no songs in (the
// overall side is always present, since the artist's songs contribute to
// it).
type Comparison struct {
	Genre     string
	ArtistAvg float64
	GenreAvg  float64
	HasArtist bool
}

// MergePopularity outer-merges the artist's per-genre averages with the
// overall per-genre averages, sorted by genre name.
func MergePopularity(artist, overall []db.GenrePopularity) []Comparison {
	byGenre := make(map[string]*Comparison, len(overall))
	for _, row := range overall {
		byGenre[row.Genre] = &Comparison{Genre: row.Genre, GenreAvg: row.AvgPopularity}
	}
	for _, row := range artist {
		c, ok := byGenre[row.Genre]
		if !ok {
			c = &Comparison{Genre: row.Genre}
			byGenre[row.Genre] = c
		}
		c.ArtistAvg = row.AvgPopularity
		c.HasArtist = true
	}

	merged := make([]Comparison, 0, len(byGenre))
	for _, c := range byGenre {
		merged = append(merged, *c)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Genre < merged[j].Genre })
	return merged
}

// Beats reports whether the artist's average popularity exceeds the genre's
// overall average; such rows are highlighted in the table.
func (c Comparison) Beats() bool {
	return c.HasArtist && c.ArtistAvg > c.GenreAvg
}
