package loader_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/christianw/songdb/data"
	"github.com/christianw/songdb/dataset"
	"github.com/christianw/songdb/db"
	"github.com/christianw/songdb/loader"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func runLoad(t *testing.T, d *db.DB, rows []dataset.Row) loader.Stats {
	t.Helper()
	stats, err := loader.New(d, zerolog.Nop()).Run(context.Background(), rows)
	require.NoError(t, err)
	return stats
}

func TestLoadRow(t *testing.T) {
	d := openTestDB(t)

	rows := dataset.Prepare([]dataset.Row{{
		Song:         "X",
		Artist:       "Foo Bar",
		Genre:        "pop, rock",
		DurationMS:   200000,
		Popularity:   70,
		Speechiness:  0.5,
		Danceability: 0.5,
		Year:         2005,
	}})
	require.Len(t, rows, 1)

	stats := runLoad(t, d, rows)
	assert.Equal(t, loader.Stats{Songs: 1, Links: 2, Artists: 1, Genres: 2}, stats)

	var artist data.Artist
	require.NoError(t, d.First(&artist).Error)
	assert.Equal(t, "foo_bar", artist.Name)

	var song data.Song
	require.NoError(t, d.First(&song).Error)
	assert.Equal(t, int64(200), song.Duration)
	assert.Equal(t, artist.ID, song.ArtistID)
	assert.Equal(t, int64(2005), song.Year)

	var genres []data.Genre
	require.NoError(t, d.Order("genre_name").Find(&genres).Error)
	require.Len(t, genres, 2)
	assert.Equal(t, "pop", genres[0].Name)
	assert.Equal(t, "rock", genres[1].Name)

	var links []data.SongGenre
	require.NoError(t, d.Find(&links).Error)
	assert.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, song.ID, link.SongID)
	}
}

func TestLoadDedupsArtistsNotSongs(t *testing.T) {
	d := openTestDB(t)

	rows := []dataset.Row{
		{Song: "X", Artist: "foo_bar", Genre: "pop", DurationMS: 200000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005},
		{Song: "Y", Artist: "foo_bar", Genre: "pop", DurationMS: 180000, Popularity: 60, Speechiness: 0.4, Danceability: 0.6, Year: 2006},
	}
	runLoad(t, d, rows)

	artists, err := d.CountArtists()
	require.NoError(t, err)
	assert.Equal(t, 1, artists)

	songs, err := d.CountSongs()
	require.NoError(t, err)
	assert.Equal(t, 2, songs)
}

func TestLoadSongCountMatchesInput(t *testing.T) {
	d := openTestDB(t)

	var rows []dataset.Row
	for i := 0; i < 7; i++ {
		rows = append(rows, dataset.Row{
			Song: "s", Artist: "a", Genre: "pop",
			DurationMS: 1000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005,
		})
	}
	stats := runLoad(t, d, rows)
	assert.Equal(t, 7, stats.Songs)

	songs, err := d.CountSongs()
	require.NoError(t, err)
	assert.Equal(t, len(rows), songs)
}

func TestLoadSongWithoutGenres(t *testing.T) {
	d := openTestDB(t)

	rows := []dataset.Row{{
		Song: "X", Artist: "a", Genre: "",
		DurationMS: 1000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005,
	}}
	stats := runLoad(t, d, rows)
	assert.Equal(t, 1, stats.Songs)
	assert.Equal(t, 0, stats.Links)

	links, err := d.CountSongGenres()
	require.NoError(t, err)
	assert.Equal(t, 0, links)
}

func TestLoadRepeatedGenreTokenDoesNotViolatePK(t *testing.T) {
	d := openTestDB(t)

	rows := []dataset.Row{{
		Song: "X", Artist: "a", Genre: "pop, pop",
		DurationMS: 1000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005,
	}}
	runLoad(t, d, rows)

	links, err := d.CountSongGenres()
	require.NoError(t, err)
	assert.Equal(t, 1, links)
}

func TestReloadDuplicatesSongsNotArtistsOrGenres(t *testing.T) {
	d := openTestDB(t)

	rows := []dataset.Row{{
		Song: "X", Artist: "a", Genre: "pop",
		DurationMS: 1000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005,
	}}

	// Two runs with fresh loaders, so the second dedups through the
	// database rather than the in-run cache.
	runLoad(t, d, rows)
	runLoad(t, d, rows)

	artists, err := d.CountArtists()
	require.NoError(t, err)
	assert.Equal(t, 1, artists)

	genres, err := d.CountGenres()
	require.NoError(t, err)
	assert.Equal(t, 1, genres)

	songs, err := d.CountSongs()
	require.NoError(t, err)
	assert.Equal(t, 2, songs)

	links, err := d.CountSongGenres()
	require.NoError(t, err)
	assert.Equal(t, 2, links, "each loaded song links to the genre")
}

func TestLoadRollsBackOnCancel(t *testing.T) {
	d := openTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []dataset.Row{{
		Song: "X", Artist: "a", Genre: "pop",
		DurationMS: 1000, Popularity: 70, Speechiness: 0.5, Danceability: 0.5, Year: 2005,
	}}
	_, err := loader.New(d, zerolog.Nop()).Run(ctx, rows)
	require.Error(t, err)

	songs, err := d.CountSongs()
	require.NoError(t, err)
	assert.Equal(t, 0, songs, "nothing committed from a canceled run")
}
