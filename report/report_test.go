package report_test

import (
	"math"
	"testing"

	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePopularity(t *testing.T) {
	artist := []db.GenrePopularity{
		{Genre: "pop", AvgPopularity: 80},
		{Genre: "rock", AvgPopularity: 60},
	}
	overall := []db.GenrePopularity{
		{Genre: "jazz", AvgPopularity: 55},
		{Genre: "pop", AvgPopularity: 70},
		{Genre: "rock", AvgPopularity: 65},
	}

	merged := report.MergePopularity(artist, overall)
	require.Len(t, merged, 3)

	assert.Equal(t, "jazz", merged[0].Genre)
	assert.False(t, merged[0].HasArtist)
	assert.False(t, merged[0].Beats())

	assert.Equal(t, "pop", merged[1].Genre)
	assert.True(t, merged[1].HasArtist)
	assert.Equal(t, 80.0, merged[1].ArtistAvg)
	assert.Equal(t, 70.0, merged[1].GenreAvg)
	assert.True(t, merged[1].Beats())

	assert.Equal(t, "rock", merged[2].Genre)
	assert.False(t, merged[2].Beats(), "60 does not beat 65")
}

func TestGenreStats(t *testing.T) {
	rows := []db.YearSong{
		{Name: "a", Genre: "pop", Danceability: 0.4, Popularity: 60},
		{Name: "b", Genre: "pop", Danceability: 0.6, Popularity: 80},
		{Name: "c", Genre: "rock", Danceability: 0.5, Popularity: 55},
	}

	stats := report.GenreStats(rows)
	require.Len(t, stats, 2)

	assert.Equal(t, "pop", stats[0].Genre)
	assert.Equal(t, 2, stats[0].TotalSongs)
	assert.InDelta(t, 0.5, stats[0].AvgDanceability, 1e-9)
	assert.InDelta(t, 70.0, stats[0].AvgPopularity, 1e-9)

	assert.Equal(t, "rock", stats[1].Genre)
	assert.Equal(t, 1, stats[1].TotalSongs)
}

func TestBuildRanking(t *testing.T) {
	stats := []db.ArtistYearStat{
		{Artist: "a", Year: 2000, TotalSongs: 10, AvgPopularity: 50},
		{Artist: "a", Year: 2002, TotalSongs: 5, AvgPopularity: 60},
		{Artist: "b", Year: 2001, TotalSongs: 2, AvgPopularity: 90},
	}

	ranking := report.BuildRanking(stats, 2000, 2002, report.DefaultWeights)
	require.Len(t, ranking.Rows, 2)
	assert.Equal(t, []int{2000, 2001, 2002}, ranking.Years)

	// b: 2001 -> 2*0.6 + 90*0.4 = 37.2; sorts first on average.
	b := ranking.Rows[0]
	assert.Equal(t, "b", b.Artist)
	assert.InDelta(t, 37.2, b.Average, 1e-9)

	// a: 2000 -> 10*0.6 + 50*0.4 = 26; 2002 -> 5*0.6 + 60*0.4 = 27.
	a := ranking.Rows[1]
	assert.Equal(t, "a", a.Artist)
	assert.InDelta(t, 26.0, a.Values[0], 1e-9)
	assert.True(t, math.IsNaN(a.Values[1]), "no songs in 2001")
	assert.InDelta(t, 27.0, a.Values[2], 1e-9)
	assert.InDelta(t, 26.5, a.Average, 1e-9, "average skips absent years")
}

func TestRankingTop(t *testing.T) {
	stats := []db.ArtistYearStat{
		{Artist: "a", Year: 2000, TotalSongs: 1, AvgPopularity: 10},
		{Artist: "b", Year: 2000, TotalSongs: 2, AvgPopularity: 20},
		{Artist: "c", Year: 2000, TotalSongs: 3, AvgPopularity: 30},
	}
	ranking := report.BuildRanking(stats, 2000, 2000, report.DefaultWeights).Top(2)
	require.Len(t, ranking.Rows, 2)
	assert.Equal(t, "c", ranking.Rows[0].Artist)
	assert.Equal(t, "b", ranking.Rows[1].Artist)
}

func TestYearlyAverages(t *testing.T) {
	stats := []db.ArtistYearStat{
		{Artist: "a", Year: 2000, TotalSongs: 10, AvgPopularity: 50}, // 26
		{Artist: "b", Year: 2000, TotalSongs: 2, AvgPopularity: 90},  // 37.2
		{Artist: "b", Year: 2001, TotalSongs: 1, AvgPopularity: 10},  // 4.6
	}
	ranking := report.BuildRanking(stats, 2000, 2002, report.DefaultWeights)

	averages := ranking.YearlyAverages()
	require.Len(t, averages, 3)
	assert.InDelta(t, 31.6, averages[0], 1e-9)
	assert.InDelta(t, 4.6, averages[1], 1e-9)
	assert.True(t, math.IsNaN(averages[2]), "no artist has 2002 data")
}

func TestInterpolate(t *testing.T) {
	nan := math.NaN()

	interior := report.Interpolate([]float64{1, nan, nan, 4})
	assert.InDelta(t, 2.0, interior[1], 1e-9)
	assert.InDelta(t, 3.0, interior[2], 1e-9)

	trailing := report.Interpolate([]float64{1, 2, nan})
	assert.InDelta(t, 2.0, trailing[2], 1e-9, "trailing gaps hold the last value")

	leading := report.Interpolate([]float64{nan, 2, 3})
	assert.True(t, math.IsNaN(leading[0]), "leading gaps stay absent")

	empty := report.Interpolate([]float64{nan, nan})
	assert.True(t, math.IsNaN(empty[0]))
	assert.True(t, math.IsNaN(empty[1]))
}
