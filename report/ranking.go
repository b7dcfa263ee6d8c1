package report

import (
	"math"
	"sort"

	"github.com/christianw/songdb/db"
)

// Weights combines song count and average popularity into one rank value:
// rank = TotalSongs*Songs + AvgPopularity*Popularity.
type Weights struct {
	Songs      float64
	Popularity float64
}

// DefaultWeights favors output volume over popularity.
var DefaultWeights = Weights{Songs: 0.6, Popularity: 0.4}

func (w Weights) rank(stat db.ArtistYearStat) float64 {
	return float64(stat.TotalSongs)*w.Songs + stat.AvgPopularity*w.Popularity
}

// A Ranking is artists pivoted against a contiguous year range. Cells for
// years an artist has no songs in are NaN. Rows are sorted by Average
// descending.
type Ranking struct {
	Years []int
	Rows  []RankingRow
}

// A RankingRow is one artist's rank value per year, aligned with
// Ranking.Years, plus the mean of the present years.
type RankingRow struct {
	Artist  string
	Values  []float64
	Average float64
}

// BuildRanking pivots per-(artist, year) stats into rank values over the
// full [startYear, endYear] range. Years without data stay NaN so the chart
// can distinguish "no songs" from a zero rank.
func BuildRanking(stats []db.ArtistYearStat, startYear, endYear int, w Weights) Ranking {
	years := make([]int, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
	}

	byArtist := make(map[string][]float64)
	for _, stat := range stats {
		if stat.Year < startYear || stat.Year > endYear {
			continue
		}
		values, ok := byArtist[stat.Artist]
		if !ok {
			values = make([]float64, len(years))
			for i := range values {
				values[i] = math.NaN()
			}
			byArtist[stat.Artist] = values
		}
		values[stat.Year-startYear] = w.rank(stat)
	}

	rows := make([]RankingRow, 0, len(byArtist))
	for artist, values := range byArtist {
		rows = append(rows, RankingRow{
			Artist:  artist,
			Values:  values,
			Average: meanPresent(values),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Average != rows[j].Average {
			return rows[i].Average > rows[j].Average
		}
		return rows[i].Artist < rows[j].Artist
	})

	return Ranking{Years: years, Rows: rows}
}

// Top returns the ranking truncated to its first n rows.
func (r Ranking) Top(n int) Ranking {
	if len(r.Rows) > n {
		r.Rows = r.Rows[:n]
	}
	return r
}

// YearlyAverages is the mean rank value across the ranking's artists for
// each year, skipping absent cells. Years where no artist has data are NaN.
func (r Ranking) YearlyAverages() []float64 {
	averages := make([]float64, len(r.Years))
	for i := range r.Years {
		sum, n := 0.0, 0
		for _, row := range r.Rows {
			if !math.IsNaN(row.Values[i]) {
				sum += row.Values[i]
				n++
			}
		}
		if n == 0 {
			averages[i] = math.NaN()
		} else {
			averages[i] = sum / float64(n)
		}
	}
	return averages
}

// Interpolate fills interior NaN gaps linearly and holds the last known
// value through trailing gaps, so each artist plots as a continuous line
// from their first year with data. Leading gaps stay NaN.
func Interpolate(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	last := -1 // index of the most recent non-NaN value
	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		if last >= 0 && i-last > 1 {
			step := (v - out[last]) / float64(i-last)
			for j := last + 1; j < i; j++ {
				out[j] = out[last] + step*float64(j-last)
			}
		}
		last = i
	}
	for i := last + 1; i < len(out) && last >= 0; i++ {
		out[i] = out[last]
	}
	return out
}

func meanPresent(values []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
