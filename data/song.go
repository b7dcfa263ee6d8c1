package data

// A Song is one surviving input row. Duration is in seconds (converted from
// the dataset's milliseconds before insertion). Each song belongs to exactly
// one artist and is immutable once inserted.
//
// Songs have many genres via the association table SongGenre.
type Song struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string  `gorm:"column:song_name;not null"`
	Duration     int64   `gorm:"column:duration;not null"`
	Explicit     int64   `gorm:"column:explicit;not null"`
	Year         int64   `gorm:"column:year;not null"`
	Popularity   int64   `gorm:"column:popularity;not null"`
	Danceability float64 `gorm:"column:danceability;not null"`
	Speechiness  float64 `gorm:"column:speechiness;not null"`
	ArtistID     int64   `gorm:"column:artist_id;not null"`
}

func (Song) TableName() string { return "Song" }
