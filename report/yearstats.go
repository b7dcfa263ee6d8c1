package report

import (
	"sort"

	"github.com/christianw/songdb/db"
)

// A GenreStat summarizes one genre's songs for a year.
type GenreStat struct {
	Genre           string
	TotalSongs      int
	AvgDanceability float64
	AvgPopularity   float64
}

// GenreStats aggregates (song, genre) rows per genre: song count, mean
// danceability, mean popularity. A song with two genres counts once in each.
// Results are sorted by genre name.
func GenreStats(rows []db.YearSong) []GenreStat {
	type acc struct {
		count        int
		danceability float64
		popularity   float64
	}
	byGenre := make(map[string]*acc)
	for _, row := range rows {
		a, ok := byGenre[row.Genre]
		if !ok {
			a = &acc{}
			byGenre[row.Genre] = a
		}
		a.count++
		a.danceability += row.Danceability
		a.popularity += float64(row.Popularity)
	}

	stats := make([]GenreStat, 0, len(byGenre))
	for genre, a := range byGenre {
		stats = append(stats, GenreStat{
			Genre:           genre,
			TotalSongs:      a.count,
			AvgDanceability: a.danceability / float64(a.count),
			AvgPopularity:   a.popularity / float64(a.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Genre < stats[j].Genre })
	return stats
}
